package multiprogress

import (
	"fmt"
	"strings"
)

// LineCap selects the end style of the bar
type LineCap int

const (
	// LineCapSquare rounds corners by the configured CornerRadius
	LineCapSquare LineCap = iota
	// LineCapRound rounds both ends into half circles
	LineCapRound
	// LineCapButt draws sharp corners regardless of CornerRadius
	LineCapButt
)

// String returns the configuration name of the line cap
func (lc LineCap) String() string {
	switch lc {
	case LineCapSquare:
		return "square"
	case LineCapRound:
		return "round"
	case LineCapButt:
		return "butt"
	default:
		return "unknown"
	}
}

// ParseLineCap converts a configuration name back to a LineCap
func ParseLineCap(name string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square", "":
		return LineCapSquare, nil
	case "round":
		return LineCapRound, nil
	case "butt", "flat":
		return LineCapButt, nil
	}
	return LineCapSquare, fmt.Errorf("unknown line cap %q", name)
}

// Insets describes padding on each edge of a frame
type Insets struct {
	Top    float32
	Left   float32
	Bottom float32
	Right  float32
}

// NewUniformInsets returns insets with the same value on every edge
func NewUniformInsets(value float32) Insets {
	return Insets{Top: value, Left: value, Bottom: value, Right: value}
}

// Horizontal returns the combined left and right inset
func (i Insets) Horizontal() float32 {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom inset
func (i Insets) Vertical() float32 {
	return i.Top + i.Bottom
}
