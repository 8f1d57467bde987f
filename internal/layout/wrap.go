package layout

import (
	"errors"
	"fmt"
	"math"
)

var ErrBadMeasurement = errors.New("text measurement is not a finite non-negative number")

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) float64

type Line []Token

// Width returns the width of the line including single-space gaps.
func (l Line) Width(measure MeasureFunc) float64 {
	if len(l) == 0 {
		return 0
	}
	w := measure(" ") * float64(len(l)-1)
	for _, t := range l {
		w += measure(t.Text)
	}
	return w
}

// Wrap greedily packs tokens into lines no wider than maxWidth. A token wider
// than maxWidth is put on a line of its own and never split.
func Wrap(tokens []Token, measure MeasureFunc, maxWidth float64) ([]Line, error) {
	space, err := checked(measure, " ")
	if err != nil {
		return nil, err
	}

	var (
		lines   []Line
		current Line
		width   float64
	)
	for _, tok := range tokens {
		tw, err := checked(measure, tok.Text)
		if err != nil {
			return nil, err
		}

		next := tw
		if len(current) > 0 {
			next = width + space + tw
		}

		if next > maxWidth && len(current) > 0 {
			lines = append(lines, current)
			current = Line{tok}
			width = tw
			continue
		}
		current = append(current, tok)
		width = next
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines, nil
}

func checked(measure MeasureFunc, s string) (float64, error) {
	w := measure(s)
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, fmt.Errorf("%w: %q measured %v", ErrBadMeasurement, s, w)
	}
	return w, nil
}
