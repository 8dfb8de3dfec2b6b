package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gethiox/intervals/internal/pkg/logger"
	"github.com/gethiox/intervals/internal/pkg/palette"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type TimeNanosecond time.Time

func (j *TimeNanosecond) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*j = TimeNanosecond(time.Unix(0, v))
	return nil
}

type Entry struct {
	Ts     TimeNanosecond `json:"ts"`
	Caller string         `json:"caller"`
	Msg    string         `json:"msg"`
	Level  int            `json:"level"`

	Kind   string   `json:"kind"`
	Args   []string `json:"args"`
	Result string   `json:"result"`
	Error  string   `json:"error"`
	Path   string   `json:"path"`
}

func unpack(data []byte) (Entry, error) {
	var v Entry
	err := json.Unmarshal(data, &v)
	return v, err
}

func gray(v uint8) aurora.Color {
	if v > 23 {
		v = 23
	}
	return aurora.Color(232+v) << 16
}

func color(r, g, b uint8) aurora.Color {
	return aurora.Color(16+36*r+6*g+b) << 16
}

// returns the same color for the same string
func colorForString(au aurora.Aurora, s string) aurora.Value {
	h := fnv.New32a()
	h.Write([]byte(s))
	sum := h.Sum32()

	r, g, b := uint8(sum)&0b00000111, uint8(sum>>8)&0b00000111, uint8(sum>>16)&0b00000111
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}

	// avoid dark colors
	if r+g+b < 3 {
		r += 1
		g += 1
		b += 1
	}

	return au.Index(16+36*r+6*g+b, s)
}

func prepareString(msg Entry, au aurora.Aurora, logLevel int) string {
	if msg.Level > logLevel {
		return ""
	}

	var msgColor aurora.Color

	switch msg.Level {
	case logger.ErrorLvl:
		msgColor = color(5, 1, 1)
	case logger.WarningLvl:
		msgColor = color(5, 5, 1)
	case logger.InfoLvl:
		msgColor = gray(18)
	case logger.QueryLvl:
		msgColor = gray(15)
	case logger.DebugLvl:
		msgColor = gray(9)
	}

	tf := time.Time(msg.Ts).Format("15:04:05.000")
	timestamp := fmt.Sprintf("[%s]", au.Reset(tf).Colorize(color(1, 1, 5)).String())

	fields := ""
	if msg.Kind != "" {
		fields += fmt.Sprintf(" [%s]", colorForString(au, msg.Kind).String())
	}
	if len(msg.Args) > 0 {
		fields += fmt.Sprintf(" [args=%s]", strings.Join(msg.Args, " "))
	}
	if msg.Result != "" {
		fields += fmt.Sprintf(" [result=%s]", msg.Result)
	}
	if msg.Path != "" {
		fields += fmt.Sprintf(" [path=%s]", colorForString(au, msg.Path).String())
	}
	if msg.Error != "" {
		fields += fmt.Sprintf(" [error=%s]", au.Reset(msg.Error).Colorize(color(5, 1, 1)).String())
	}
	if logLevel >= logger.DebugLvl && msg.Caller != "" {
		x := strings.Split(msg.Caller, ":")
		if len(x) == 2 {
			fields += fmt.Sprintf(" (%s:%s)", colorForString(au, x[0]).String(), x[1])
		}
	}

	m := au.Reset(msg.Msg).Colorize(msgColor).String()
	if fields == "" {
		return fmt.Sprintf("%s %s", timestamp, m)
	}
	return fmt.Sprintf("%s %s%s", timestamp, m, fields)
}

type Printer struct {
	au         aurora.Aurora
	noteColors bool
}

func NewPrinter(color, noteColors bool) Printer {
	return Printer{au: aurora.NewAurora(color), noteColors: noteColors && color}
}

// Note renders a note spelling, colored by pitch class when enabled.
func (p Printer) Note(note string) string {
	if !p.noteColors {
		return note
	}
	return palette.Colorize(p.au, note).String()
}

func (p Printer) Interval(name string) string {
	return p.au.Bold(name).String()
}

func (p Printer) Failure(err error) string {
	return p.au.Red(err.Error()).String()
}

func (p Printer) Label(label string) string {
	return p.au.Gray(14, label).String()
}
