package query

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gethiox/intervals/internal/pkg/interval"
	"gopkg.in/yaml.v3"
)

const (
	KindConstruct = "construct"
	KindIdentify  = "identify"
)

var (
	ErrAmbiguousQuery = errors.New("query has to define exactly one of construct or identify")
)

type Query struct {
	Construct []string `yaml:"construct,omitempty"`
	Identify  []string `yaml:"identify,omitempty"`
}

type File struct {
	Queries []Query `yaml:"queries"`
}

type Result struct {
	Query  Query
	Output string
	Err    error
}

func (q Query) Kind() string {
	if q.Construct != nil {
		return KindConstruct
	}
	return KindIdentify
}

func (q Query) Args() []string {
	if q.Construct != nil {
		return q.Construct
	}
	return q.Identify
}

func (q Query) String() string {
	return fmt.Sprintf("%s [%s]", q.Kind(), strings.Join(q.Args(), " "))
}

func (q Query) Validate() error {
	if (q.Construct == nil) == (q.Identify == nil) {
		return ErrAmbiguousQuery
	}
	return nil
}

// Run evaluates query, two-element argument lists get dir appended.
func (q Query) Run(dir interval.Direction) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	args := q.Args()
	if len(args) == 2 {
		args = append(args[:2:2], dir.String())
	}

	switch q.Kind() {
	case KindConstruct:
		return interval.ConstructInterval(args)
	default:
		return interval.IdentifyInterval(args)
	}
}

func RunAll(queries []Query, dir interval.Direction) []Result {
	var results = make([]Result, 0, len(queries))
	for _, q := range queries {
		out, err := q.Run(dir)
		results = append(results, Result{Query: q, Output: out, Err: err})
	}
	return results
}

func ParseData(data []byte) ([]Query, error) {
	var f File
	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode queries: %w", err)
	}

	for i, q := range f.Queries {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("query %d: %w", i+1, err)
		}
	}
	return f.Queries, nil
}

func Load(path string) ([]Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read \"%s\" file: %w", path, err)
	}

	queries, err := ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("\"%s\": %w", path, err)
	}
	return queries, nil
}
