package multiprogress

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// viewRenderer draws the container background, the track and its sections.
// Sections are drawn above the track image and title.
type viewRenderer struct {
	view       *MultiProgressView
	background *canvas.Rectangle
	track      *canvas.Rectangle
	trackImage *canvas.Image
	title      *canvas.Text
}

func newViewRenderer(v *MultiProgressView) *viewRenderer {
	r := &viewRenderer{
		view:       v,
		background: canvas.NewRectangle(color.Transparent),
		track:      canvas.NewRectangle(color.Transparent),
		trackImage: canvas.NewImageFromResource(nil),
		title:      canvas.NewText("", color.Transparent),
	}
	r.trackImage.FillMode = canvas.ImageFillContain
	r.applyStyle()
	return r
}

// Layout recomputes every frame from the current size and progress
func (r *viewRenderer) Layout(size fyne.Size) {
	res := computeLayout(size, r.view.layoutConfig(), r.view.state().Fractions())

	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)
	r.background.CornerRadius = res.cornerRadius

	r.track.Move(res.track.pos)
	r.track.Resize(res.track.size)
	r.track.CornerRadius = res.trackCornerRadius

	r.trackImage.Move(res.track.pos)
	r.trackImage.Resize(res.track.size)

	placed := alignText(res.title, r.title.MinSize())
	r.title.Move(placed.pos)
	r.title.Resize(placed.size)

	for i, s := range r.view.sections {
		if i >= len(res.sections) {
			break
		}
		s.Move(res.sections[i].pos)
		s.Resize(res.sections[i].size)
	}
}

func (r *viewRenderer) MinSize() fyne.Size {
	v := r.view
	inset := nonNegative(v.TrackInset)

	trackHeight := MinTrackHeight
	width := float32(0)
	if v.TrackTitle != "" {
		textMin := r.title.MinSize()
		trackHeight = fyne.Max(trackHeight, textMin.Height+v.TrackTitleInsets.Vertical())
		width = textMin.Width + v.TrackTitleInsets.Horizontal()
	}
	return fyne.NewSize(width+2*inset, trackHeight+2*inset)
}

func (r *viewRenderer) Refresh() {
	r.applyStyle()
	r.Layout(r.view.Size())

	r.background.Refresh()
	r.track.Refresh()
	r.trackImage.Refresh()
	r.title.Refresh()
	for _, s := range r.view.sections {
		s.Refresh()
	}
}

func (r *viewRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 4+len(r.view.sections))
	objects = append(objects, r.background, r.track, r.trackImage, r.title)
	for _, s := range r.view.sections {
		objects = append(objects, s)
	}
	return objects
}

func (r *viewRenderer) Destroy() {}

func (r *viewRenderer) applyStyle() {
	v := r.view

	r.background.FillColor = v.BackgroundColor
	if r.background.FillColor == nil {
		r.background.FillColor = color.Transparent
	}
	r.background.StrokeColor = colorOr(v.BorderColor, theme.ColorNameInputBorder)
	r.background.StrokeWidth = nonNegative(v.BorderWidth)

	r.track.FillColor = colorOr(v.TrackBackgroundColor, theme.ColorNameInputBackground)
	r.track.StrokeColor = colorOr(v.TrackBorderColor, theme.ColorNameInputBorder)
	r.track.StrokeWidth = nonNegative(v.TrackBorderWidth)

	r.trackImage.Resource = v.TrackImage
	if v.TrackImage == nil {
		r.trackImage.Hide()
	} else {
		r.trackImage.Show()
	}

	r.title.Text = v.TrackTitle
	r.title.Color = colorOr(v.TrackTitleColor, theme.ColorNameForeground)
	r.title.TextStyle = v.TrackTitleStyle
	r.title.TextSize = textSizeOr(v.TrackTitleSize)
	r.title.Alignment = v.TrackTitleAlignment
}
