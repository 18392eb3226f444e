package multiprogress

import (
	"math"

	"fyne.io/fyne/v2"
)

// frame is a rectangle relative to the view origin
type frame struct {
	pos  fyne.Position
	size fyne.Size
}

// layoutConfig is the subset of view settings that affects geometry
type layoutConfig struct {
	trackInset   float32
	cornerRadius float32
	lineCap      LineCap
	titleInsets  Insets
}

// layoutResult holds every frame of one layout pass
type layoutResult struct {
	track             frame
	title             frame
	sections          []frame
	cornerRadius      float32
	trackCornerRadius float32
}

// computeLayout maps the outer size and section fractions to frames.
// Section widths are proportional to their fraction of the capacity and
// are laid edge to edge starting at the leading edge of the track.
func computeLayout(size fyne.Size, cfg layoutConfig, fractions []float64) layoutResult {
	inset := nonNegative(cfg.trackInset)
	track := frame{
		pos: fyne.NewPos(inset, inset),
		size: fyne.NewSize(
			nonNegative(size.Width-2*inset),
			nonNegative(size.Height-2*inset),
		),
	}

	res := layoutResult{
		track:    track,
		title:    insetFrame(track, cfg.titleInsets),
		sections: make([]frame, len(fractions)),
	}

	x := track.pos.X
	for i, f := range fractions {
		width := track.size.Width * float32(clampFraction(f))
		// float error must not push the last section past the track end
		if end := track.pos.X + track.size.Width; x+width > end {
			width = nonNegative(end - x)
		}
		res.sections[i] = frame{
			pos:  fyne.NewPos(x, track.pos.Y),
			size: fyne.NewSize(width, track.size.Height),
		}
		x += width
	}

	switch cfg.lineCap {
	case LineCapRound:
		res.cornerRadius = size.Height / 2
		res.trackCornerRadius = track.size.Height / 2
	case LineCapButt:
		res.cornerRadius = 0
		res.trackCornerRadius = 0
	default:
		res.cornerRadius = nonNegative(cfg.cornerRadius)
		res.trackCornerRadius = nonNegative(cfg.cornerRadius - inset)
	}
	return res
}

func insetFrame(f frame, in Insets) frame {
	return frame{
		pos: fyne.NewPos(f.pos.X+in.Left, f.pos.Y+in.Top),
		size: fyne.NewSize(
			nonNegative(f.size.Width-in.Horizontal()),
			nonNegative(f.size.Height-in.Vertical()),
		),
	}
}

// alignText places a text of the given min size inside a frame,
// vertically centred. Horizontal alignment is left to canvas.Text.
func alignText(f frame, textMin fyne.Size) frame {
	height := fyne.Min(textMin.Height, f.size.Height)
	return frame{
		pos:  fyne.NewPos(f.pos.X, f.pos.Y+(f.size.Height-height)/2),
		size: fyne.NewSize(f.size.Width, height),
	}
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
