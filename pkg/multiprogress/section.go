package multiprogress

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// Section is one progress contributor of a MultiProgressView.
// Its size is owned by the view; its fields only control presentation.
type Section struct {
	widget.BaseWidget

	FillColor      color.Color
	Title          string
	TitleColor     color.Color
	TitleStyle     fyne.TextStyle
	TitleSize      float32
	TitleAlignment fyne.TextAlign
	TitleInsets    Insets
	Image          fyne.Resource

	id       string
	progress float64

	// set by the owning view on reload, used only to report taps
	onTap func(*Section)
}

// NewSection creates a section filled with the given color
func NewSection(fill color.Color) *Section {
	s := &Section{
		FillColor:      fill,
		TitleAlignment: fyne.TextAlignCenter,
		id:             newSectionID(),
	}
	s.ExtendBaseWidget(s)
	return s
}

func newSectionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("Warning: uuid v7 unavailable, falling back to v4: %v", err)
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the identity used to map the section back to its index
func (s *Section) ID() string {
	if s.id == "" {
		s.id = newSectionID()
	}
	return s.id
}

// Progress returns the progress last applied to this section
func (s *Section) Progress() float64 {
	return s.progress
}

// Tapped reports the tap to the owning view
func (s *Section) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap(s)
	}
}

func (s *Section) attach(onTap func(*Section)) {
	s.onTap = onTap
	s.progress = 0
}

func (s *Section) detach() {
	s.onTap = nil
	s.progress = 0
}

// CreateRenderer implements fyne.Widget
func (s *Section) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)
	r := &sectionRenderer{
		section: s,
		fill:    canvas.NewRectangle(color.Transparent),
		image:   canvas.NewImageFromResource(nil),
		title:   canvas.NewText("", color.Transparent),
	}
	r.image.FillMode = canvas.ImageFillContain
	r.applyStyle()
	return r
}

type sectionRenderer struct {
	section *Section
	fill    *canvas.Rectangle
	image   *canvas.Image
	title   *canvas.Text
}

func (r *sectionRenderer) Layout(size fyne.Size) {
	r.fill.Move(fyne.NewPos(0, 0))
	r.fill.Resize(size)
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(size)

	inner := insetFrame(frame{size: size}, r.section.TitleInsets)
	placed := alignText(inner, r.title.MinSize())
	r.title.Move(placed.pos)
	r.title.Resize(placed.size)
}

// MinSize is zero since the owning view decides the width
func (r *sectionRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *sectionRenderer) Refresh() {
	r.applyStyle()
	r.Layout(r.section.Size())
	r.fill.Refresh()
	r.image.Refresh()
	r.title.Refresh()
}

func (r *sectionRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.image, r.title}
}

func (r *sectionRenderer) Destroy() {}

func (r *sectionRenderer) applyStyle() {
	s := r.section
	r.fill.FillColor = colorOr(s.FillColor, theme.ColorNamePrimary)

	r.image.Resource = s.Image
	if s.Image == nil {
		r.image.Hide()
	} else {
		r.image.Show()
	}

	r.title.Text = s.Title
	r.title.Color = colorOr(s.TitleColor, theme.ColorNameForegroundOnPrimary)
	r.title.TextStyle = s.TitleStyle
	r.title.TextSize = textSizeOr(s.TitleSize)
	r.title.Alignment = s.TitleAlignment
}

func colorOr(c color.Color, fallback fyne.ThemeColorName) color.Color {
	if c != nil {
		return c
	}
	return theme.Color(fallback)
}

func textSizeOr(size float32) float32 {
	if size > 0 {
		return size
	}
	return theme.Size(theme.SizeNameCaptionText)
}
