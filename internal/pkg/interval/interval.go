package interval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	errArgumentsCount = fmt.Errorf("%w: illegal number of elements: 2 or 3 elements needed", ErrInvalidInput)
)

// ConstructInterval expects [interval, startNote] or [interval, startNote, direction].
func ConstructInterval(args []string) (string, error) {
	dir, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	return Construct(args[0], args[1], dir)
}

// IdentifyInterval expects [startNote, endNote] or [startNote, endNote, direction].
func IdentifyInterval(args []string) (string, error) {
	dir, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	return Identify(args[0], args[1], dir)
}

func parseArgs(args []string) (Direction, error) {
	if len(args) < 2 || len(args) > 3 {
		return Ascending, errArgumentsCount
	}
	if len(args) == 3 {
		return ParseDirection(args[2])
	}
	return Ascending, nil
}

// Construct returns the note lying given interval away from startNote.
func Construct(name, startNote string, dir Direction) (string, error) {
	distance, err := Distance(name)
	if err != nil {
		return "", err
	}
	start, err := Semitone(startNote)
	if err != nil {
		return "", err
	}

	startPos := letterPosition(startNote[0])
	degree := int(name[1] - '0')

	var pos, semitone int
	if dir == Descending {
		pos = (startPos - degree) % lettersCount
		semitone = (start - distance) % semitonesCount
	} else {
		pos = (startPos + degree - 2) % lettersCount
		semitone = (start + distance) % semitonesCount
	}
	if pos < 0 {
		pos += lettersCount
	}
	if semitone < 0 {
		semitone += semitonesCount
	}

	// position is one step behind the target letter
	letter := letters[(pos+1)%lettersCount]

	for _, n := range notes {
		if n.Name[0] == letter && n.Semitone == semitone {
			return n.Name, nil
		}
	}
	return "", fmt.Errorf("%w: no %c spelling with %d semitones (%s %s from %s)",
		ErrInvalidInput, letter, semitone, name, dir, startNote)
}

// Identify returns name of the interval between two notes.
func Identify(startNote, endNote string, dir Direction) (string, error) {
	start, err := Semitone(startNote)
	if err != nil {
		return "", err
	}
	end, err := Semitone(endNote)
	if err != nil {
		return "", err
	}

	if start > end {
		end += semitonesCount
	}

	// modulo is the note table size, not the octave
	distance := abs(end-start) % len(notes)
	if dir == Descending {
		distance = -distance + semitonesCount
	}

	for _, i := range intervals {
		if i.Semitone == distance {
			return i.Name, nil
		}
	}
	return "", fmt.Errorf("%w: no interval spans %d semitones (%s %s %s)",
		ErrInvalidInput, distance, startNote, dir, endNote)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
