package interval

import "fmt"

type Note struct {
	Name     string
	Semitone int
}

type Interval struct {
	Name     string
	Semitone int
}

// notes keeps declaration order, reverse lookups scan it front to back.
var notes = []Note{
	{"Cbb", -2}, {"Cb", -1}, {"C", 0}, {"C#", 1}, {"C##", 2},
	{"Dbb", 0}, {"Db", 1}, {"D", 2}, {"D#", 3}, {"D##", 4},
	{"Ebb", 2}, {"Eb", 3}, {"E", 4}, {"E#", 5}, {"E##", 6},
	{"Fbb", 3}, {"Fb", 4}, {"F", 5}, {"F#", 6}, {"F##", 7},
	{"Gbb", 5}, {"Gb", 6}, {"G", 7}, {"G#", 8}, {"G##", 9},
	{"Abb", 7}, {"Ab", 8}, {"A", 9}, {"A#", 10}, {"A##", 11},
	{"Bbb", 9}, {"Bb", 10}, {"B", 11}, {"B#", 12}, {"B##", 13},
}

var intervals = []Interval{
	{"m2", 1}, {"M2", 2},
	{"m3", 3}, {"M3", 4},
	{"P4", 5}, {"P5", 7},
	{"m6", 8}, {"M6", 9},
	{"m7", 10}, {"M7", 11},
	{"P8", 12},
}

// diatonic letter cycle
var letters = [...]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

const (
	lettersCount   = len(letters)
	semitonesCount = 12
)

var (
	noteToSemitone     = make(map[string]int, len(notes))
	intervalToSemitone = make(map[string]int, len(intervals))
)

func init() {
	for _, n := range notes {
		noteToSemitone[n.Name] = n.Semitone
	}
	for _, i := range intervals {
		intervalToSemitone[i.Name] = i.Semitone
	}
}

// Semitone returns offset of given note spelling relative to C.
func Semitone(note string) (int, error) {
	s, ok := noteToSemitone[note]
	if !ok {
		return 0, fmt.Errorf("%w: unknown note %q", ErrInvalidInput, note)
	}
	return s, nil
}

// Distance returns semitone distance of given interval name.
func Distance(name string) (int, error) {
	d, ok := intervalToSemitone[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown interval %q", ErrInvalidInput, name)
	}
	return d, nil
}

func Notes() []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

func Intervals() []Interval {
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	return out
}

func letterPosition(letter byte) int {
	for i, l := range letters {
		if l == letter {
			return i
		}
	}
	return -1
}
