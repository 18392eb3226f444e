package multiprogress

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/zxf000000/MultiProgressView/internal/model"
)

// MinTrackHeight is the smallest track height reported by MinSize
const MinTrackHeight float32 = 4

// MultiProgressView is a progress bar split into sections that share one capacity.
// Exported fields are presentation settings; call Refresh after changing them.
type MultiProgressView struct {
	widget.BaseWidget

	DataSource      DataSource
	OnSectionTapped func(section int)

	CornerRadius    float32
	BorderWidth     float32
	BorderColor     color.Color
	BackgroundColor color.Color
	LineCap         LineCap

	TrackInset           float32
	TrackBackgroundColor color.Color
	TrackBorderColor     color.Color
	TrackBorderWidth     float32
	TrackImage           fyne.Resource

	TrackTitle          string
	TrackTitleColor     color.Color
	TrackTitleStyle     fyne.TextStyle
	TrackTitleSize      float32
	TrackTitleAlignment fyne.TextAlign
	TrackTitleInsets    Insets

	sections []*Section
	index    map[string]int
	tracker  *model.Tracker
}

// NewMultiProgressView creates the widget and loads sections from source.
// A nil source leaves the view empty until DataSource is set and ReloadData called.
func NewMultiProgressView(source DataSource) *MultiProgressView {
	v := &MultiProgressView{
		DataSource:          source,
		TrackTitleAlignment: fyne.TextAlignLeading,
	}
	v.ExtendBaseWidget(v)
	v.ReloadData()
	return v
}

func (v *MultiProgressView) state() *model.Tracker {
	if v.tracker == nil {
		v.tracker = model.NewTracker(model.NormalizedCapacity)
	}
	return v.tracker
}

// ReloadData discards all sections and progress and rebuilds them from DataSource
func (v *MultiProgressView) ReloadData() {
	if v.DataSource == nil {
		return
	}

	for _, s := range v.sections {
		s.detach()
	}

	count := v.DataSource.NumberOfSections(v)
	if count < 0 {
		log.Printf("Warning: data source reported %d sections, using 0", count)
		count = 0
	}

	capacity := model.NormalizedCapacity
	if units, ok := v.DataSource.(UnitsDataSource); ok {
		if n := units.NumberOfUnits(v); n > 0 {
			capacity = float64(n)
		}
	}

	v.sections = make([]*Section, count)
	v.index = make(map[string]int, count)
	for i := 0; i < count; i++ {
		s := v.DataSource.Section(v, i)
		if s == nil {
			log.Printf("Warning: data source returned nil section %d, using empty placeholder", i)
			s = NewSection(color.Transparent)
		} else if _, dup := v.index[s.ID()]; dup {
			log.Printf("Warning: data source returned section %s twice, using empty placeholder at %d", s.ID(), i)
			s = NewSection(color.Transparent)
		}
		s.attach(v.sectionTapped)
		v.sections[i] = s
		v.index[s.ID()] = i
	}

	v.state().Reset(count, capacity)
	v.Refresh()
}

// SetProgress sets the progress of a section, clamped to what the capacity allows
func (v *MultiProgressView) SetProgress(section int, progress float64) {
	applied, err := v.state().Set(section, progress)
	if err != nil {
		log.Printf("Warning: SetProgress ignored: %v", err)
		return
	}
	v.sections[section].progress = applied
	v.Refresh()
}

// Advance adds by to the current progress of a section
func (v *MultiProgressView) Advance(section int, by float64) {
	v.SetProgress(section, v.Progress(section)+by)
}

// SetUnits sets the progress of a section in whole units
func (v *MultiProgressView) SetUnits(section int, units int) {
	v.SetProgress(section, float64(units))
}

// AdvanceUnits adds whole units to the progress of a section
func (v *MultiProgressView) AdvanceUnits(section int, by int) {
	v.Advance(section, float64(by))
}

// ResetProgress zeroes every section, relaying out after each one
func (v *MultiProgressView) ResetProgress() {
	for i := range v.sections {
		v.SetProgress(i, 0)
	}
}

// Progress returns the progress of a section, 0 for unknown sections
func (v *MultiProgressView) Progress(section int) float64 {
	return v.state().Progress(section)
}

// TotalProgress returns the combined progress of all sections
func (v *MultiProgressView) TotalProgress() float64 {
	return v.state().Total()
}

// Capacity returns the maximum combined progress: 1.0 or the unit total
func (v *MultiProgressView) Capacity() float64 {
	return v.state().Capacity()
}

// NumberOfSections returns the number of sections loaded by the last reload
func (v *MultiProgressView) NumberOfSections() int {
	return len(v.sections)
}

// Section returns the section at index, nil if there is none
func (v *MultiProgressView) Section(index int) *Section {
	if index < 0 || index >= len(v.sections) {
		return nil
	}
	return v.sections[index]
}

func (v *MultiProgressView) sectionTapped(s *Section) {
	i, ok := v.index[s.ID()]
	if !ok || v.sections[i] != s {
		return
	}
	if v.OnSectionTapped != nil {
		v.OnSectionTapped(i)
	}
}

func (v *MultiProgressView) layoutConfig() layoutConfig {
	return layoutConfig{
		trackInset:   v.TrackInset,
		cornerRadius: v.CornerRadius,
		lineCap:      v.LineCap,
		titleInsets:  v.TrackTitleInsets,
	}
}

// CreateRenderer implements fyne.Widget
func (v *MultiProgressView) CreateRenderer() fyne.WidgetRenderer {
	v.ExtendBaseWidget(v)
	return newViewRenderer(v)
}
