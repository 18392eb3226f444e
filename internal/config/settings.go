package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

// Settings keys for Fyne preferences
const (
	KeySectionCount = "section_count"
	KeyUnitTotal    = "unit_total"
	KeyLineCap      = "line_cap"
	KeyTrackInset   = "track_inset"
	KeyStep         = "advance_step"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultSectionCount = 4
	DefaultUnitTotal    = 0
	DefaultLineCap      = multiprogress.LineCapRound
	DefaultTrackInset   = 2.0
	DefaultStep         = 0.05
	DefaultLanguage     = "system"
)

// Limits applied by the setters
const (
	MaxSectionCount = 12
	MaxUnitTotal    = 1000
	MaxTrackInset   = 16.0
)

// Settings manages the demo configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSectionCount returns how many sections the demo data source reports
func (s *Settings) GetSectionCount() int {
	value := s.app.Preferences().Int(KeySectionCount)
	if value <= 0 {
		s.SetSectionCount(DefaultSectionCount)
		return DefaultSectionCount
	}
	return value
}

// SetSectionCount sets the section count
func (s *Settings) SetSectionCount(count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxSectionCount {
		count = MaxSectionCount
	}
	s.app.Preferences().SetInt(KeySectionCount, count)
}

// GetUnitTotal returns the unit capacity, 0 meaning the normalized capacity
func (s *Settings) GetUnitTotal() int {
	return s.app.Preferences().IntWithFallback(KeyUnitTotal, DefaultUnitTotal)
}

// SetUnitTotal sets the unit capacity
func (s *Settings) SetUnitTotal(units int) {
	if units < 0 {
		units = 0
	}
	if units > MaxUnitTotal {
		units = MaxUnitTotal
	}
	s.app.Preferences().SetInt(KeyUnitTotal, units)
}

// GetLineCap returns the configured line cap
func (s *Settings) GetLineCap() multiprogress.LineCap {
	name := s.app.Preferences().String(KeyLineCap)
	if name == "" {
		s.SetLineCap(DefaultLineCap)
		return DefaultLineCap
	}
	lc, err := multiprogress.ParseLineCap(name)
	if err != nil {
		log.Printf("Warning: invalid stored line cap: %v", err)
		s.SetLineCap(DefaultLineCap)
		return DefaultLineCap
	}
	return lc
}

// SetLineCap sets the line cap
func (s *Settings) SetLineCap(lc multiprogress.LineCap) {
	s.app.Preferences().SetString(KeyLineCap, lc.String())
}

// GetTrackInset returns the inset between bar border and track
func (s *Settings) GetTrackInset() float32 {
	return float32(s.app.Preferences().FloatWithFallback(KeyTrackInset, DefaultTrackInset))
}

// SetTrackInset sets the track inset
func (s *Settings) SetTrackInset(inset float32) {
	if inset < 0 {
		inset = 0
	}
	if inset > MaxTrackInset {
		inset = MaxTrackInset
	}
	s.app.Preferences().SetFloat(KeyTrackInset, float64(inset))
}

// GetStep returns the share of the capacity added by one Advance press
func (s *Settings) GetStep() float64 {
	value := s.app.Preferences().Float(KeyStep)
	if value <= 0 || value > 1 {
		s.SetStep(DefaultStep)
		return DefaultStep
	}
	return value
}

// SetStep sets the advance step; values outside (0, 1] fall back to the default
func (s *Settings) SetStep(step float64) {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	s.app.Preferences().SetFloat(KeyStep, step)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLineCapOptions returns available line caps
func (s *Settings) GetLineCapOptions() []multiprogress.LineCap {
	return []multiprogress.LineCap{multiprogress.LineCapRound, multiprogress.LineCapSquare, multiprogress.LineCapButt}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
