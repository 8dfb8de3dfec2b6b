package interval

import "fmt"

const (
	Ascending Direction = iota
	Descending
)

type Direction int

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "dsc"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "asc" or "dsc" only.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "asc":
		return Ascending, nil
	case "dsc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, token)
	}
}
