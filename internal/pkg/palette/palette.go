package palette

import (
	"math"

	"github.com/gethiox/intervals/internal/pkg/interval"
	"github.com/logrusorgru/aurora"
	"github.com/lucasb-eyer/go-colorful"
)

// fallback for anything outside of the note table
const gray = 244

// Index maps a note onto xterm 256-color cube, enharmonic spellings share a color.
func Index(note string) uint8 {
	s, err := interval.Semitone(note)
	if err != nil {
		return gray
	}
	pitchClass := ((s % 12) + 12) % 12

	c := colorful.Hsv(float64(pitchClass*30), 0.8, 1).Clamped()
	r, g, b := level(c.R), level(c.G), level(c.B)

	// avoid dark colors
	if r+g+b < 3 {
		r += 1
		g += 1
		b += 1
	}

	return 16 + 36*r + 6*g + b
}

// 0.0-1.0 -> 0-5
func level(v float64) uint8 {
	return uint8(math.Round(v * 5))
}

func Colorize(au aurora.Aurora, note string) aurora.Value {
	return au.Index(Index(note), note)
}
