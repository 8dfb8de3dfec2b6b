package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/gethiox/intervals/internal/pkg/interval"
	"github.com/gethiox/intervals/internal/pkg/logger"
	"github.com/gethiox/intervals/internal/pkg/query"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

var (
	configPath = flag.String("config", "./intervals.config", "path to config file, generated when missing")
	construct  = flag.String("construct", "", "construct interval, eg. \"M3 Cb dsc\" (interval, start note, optional direction)")
	identify   = flag.String("identify", "", "identify interval, eg. \"C D asc\" (start note, end note, optional direction)")
	batch      = flag.String("batch", "", "evaluate queries from YAML file")
	watch      = flag.Bool("watch", false, "re-evaluate batch file on every change (requires -batch)")
	nocolor    = flag.Bool("nocolor", false, "disable color")
	silent     = flag.Bool("silent", false, "no log output")
	logLevel   = flag.Int("loglevel", 2,
		"logging level, each level enables additional information class (0-4, default: 2)\n"+
			"\navailable options:\n"+
			"0: errors\n"+
			"1: warnings\n"+
			"2: general info\n"+
			"3: evaluated queries\n"+
			"4: debug",
	)
)

func printLogs(wg *sync.WaitGroup, done <-chan struct{}, w io.Writer, au aurora.Aurora, logLevel int) {
	defer wg.Done()

	write := func(data []byte) {
		if *silent {
			return
		}
		msg, err := unpack(data)
		if err != nil {
			fmt.Fprintf(w, "%s\n", string(data))
			return
		}
		m := prepareString(msg, au, logLevel)
		if m != "" {
			fmt.Fprintf(w, "%s\n", m)
		}
	}

	for {
		select {
		case data := <-logger.Messages:
			write(data)
		case <-done:
			// flush what is already buffered
			for {
				select {
				case data := <-logger.Messages:
					write(data)
				default:
					return
				}
			}
		}
	}
}

func main() {
	flag.Parse()
	if *logLevel >= 4 {
		*logLevel = logger.DebugLvl
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go printLogs(&wg, done, os.Stderr, aurora.NewAurora(!*nocolor && isTerminal(os.Stderr)), *logLevel)

	code := run(os.Stdout)

	close(done)
	wg.Wait()
	os.Exit(code)
}

func run(w io.Writer) int {
	err := createConfigIfNeeded(*configPath)
	if err != nil {
		log.Error("config generation failed", logger.Error, zap.Error(err))
		return 1
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Error("loading config failed", logger.Error, zap.Error(err))
		return 1
	}
	log.Info(fmt.Sprintf("config: %+v", cfg), logger.Debug)

	p := NewPrinter(cfg.Output.Color && !*nocolor && isTerminal(os.Stdout), cfg.Output.NoteColors)
	dir := cfg.Intervals.DefaultDirection

	switch {
	case *batch != "":
		if *watch {
			return watchBatch(w, p, *batch, dir)
		}
		return runBatch(w, p, *batch, dir)
	case *construct != "" || *identify != "":
		ok := true
		if *construct != "" {
			ok = evaluate(w, p, query.Query{Construct: strings.Fields(*construct)}, dir) && ok
		}
		if *identify != "" {
			ok = evaluate(w, p, query.Query{Identify: strings.Fields(*identify)}, dir) && ok
		}
		if !ok {
			return 1
		}
		return 0
	default:
		return demo(w, p)
	}
}

func demo(w io.Writer, p Printer) int {
	constructed, err := interval.ConstructInterval([]string{"M3", "Cb", "dsc"})
	if err != nil {
		log.Error("interval construction failed", logger.Error, zap.Error(err))
		return 1
	}
	fmt.Fprintf(w, "Interval construction: %s\n", p.Note(constructed))

	identified, err := interval.IdentifyInterval([]string{"C", "D", "asc"})
	if err != nil {
		log.Error("interval identification failed", logger.Error, zap.Error(err))
		return 1
	}
	fmt.Fprintf(w, "Interval identification: %s\n", p.Interval(identified))
	return 0
}

func evaluate(w io.Writer, p Printer, q query.Query, dir interval.Direction) bool {
	out, err := q.Run(dir)
	printResult(w, p, query.Result{Query: q, Output: out, Err: err})
	return err == nil
}

func printResult(w io.Writer, p Printer, r query.Result) {
	fields := []zap.Field{zap.String("kind", r.Query.Kind()), zap.Strings("args", r.Query.Args())}
	if r.Err != nil {
		log.Warn("query failed", append(fields, logger.Warning, zap.Error(r.Err))...)
		fmt.Fprintf(w, "%s%s\n", p.Label(r.Query.String()+": "), p.Failure(r.Err))
		return
	}
	log.Info("query evaluated", append(fields, logger.Query, zap.String("result", r.Output))...)

	var out string
	if r.Query.Kind() == query.KindConstruct {
		out = p.Note(r.Output)
	} else {
		out = p.Interval(r.Output)
	}
	fmt.Fprintf(w, "%s%s\n", p.Label(r.Query.String()+": "), out)
}

func runBatch(w io.Writer, p Printer, path string, dir interval.Direction) int {
	queries, err := query.Load(path)
	if err != nil {
		log.Error("loading batch failed", logger.Error, zap.String("path", path), zap.Error(err))
		return 1
	}
	log.Info(fmt.Sprintf("evaluating %d queries", len(queries)), logger.Info, zap.String("path", path))

	code := 0
	for _, r := range query.RunAll(queries, dir) {
		printResult(w, p, r)
		if r.Err != nil {
			code = 1
		}
	}
	return code
}

func watchBatch(w io.Writer, p Printer, path string, dir interval.Direction) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchLoop(ctx, w, p, path, dir)
}

// watchLoop re-evaluates batch on every change until ctx is done.
func watchLoop(ctx context.Context, w io.Writer, p Printer, path string, dir interval.Direction) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	change, err := query.DetectChanges(ctx, path)
	if err != nil {
		log.Error("watching batch failed", logger.Error, zap.String("path", path), zap.Error(err))
		return 1
	}

	code := runBatch(w, p, path, dir)
	log.Info("watching for changes, interrupt to exit", logger.Info, zap.String("path", path))

root:
	for {
		select {
		case <-ctx.Done():
			log.Info("watching stopped", logger.Debug, zap.String("path", path))
			break root
		case _, ok := <-change:
			if !ok {
				break root
			}
			code = runBatch(w, p, path, dir)
		}
	}

	// watcher closes change once it notices cancellation
	cancel()
	for range change {
	}
	return code
}
