package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSectionCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if count := settings.GetSectionCount(); count != DefaultSectionCount {
		t.Errorf("Expected default section count %d, got %d", DefaultSectionCount, count)
	}

	settings.SetSectionCount(6)
	if count := settings.GetSectionCount(); count != 6 {
		t.Errorf("Expected section count 6, got %d", count)
	}

	// Test boundary values
	settings.SetSectionCount(0)
	if settings.GetSectionCount() != 1 {
		t.Error("Section count should be clamped to minimum 1")
	}

	settings.SetSectionCount(100)
	if settings.GetSectionCount() != MaxSectionCount {
		t.Errorf("Section count should be clamped to maximum %d", MaxSectionCount)
	}
}

func TestUnitTotal(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if units := settings.GetUnitTotal(); units != DefaultUnitTotal {
		t.Errorf("Expected default unit total %d, got %d", DefaultUnitTotal, units)
	}

	settings.SetUnitTotal(10)
	if units := settings.GetUnitTotal(); units != 10 {
		t.Errorf("Expected unit total 10, got %d", units)
	}

	settings.SetUnitTotal(-5)
	if settings.GetUnitTotal() != 0 {
		t.Error("Negative unit total should be clamped to 0")
	}

	settings.SetUnitTotal(MaxUnitTotal + 1)
	if settings.GetUnitTotal() != MaxUnitTotal {
		t.Errorf("Unit total should be clamped to maximum %d", MaxUnitTotal)
	}
}

func TestLineCap(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lc := settings.GetLineCap(); lc != DefaultLineCap {
		t.Errorf("Expected default line cap %s, got %s", DefaultLineCap, lc)
	}

	settings.SetLineCap(multiprogress.LineCapButt)
	if lc := settings.GetLineCap(); lc != multiprogress.LineCapButt {
		t.Errorf("Expected line cap butt, got %s", lc)
	}

	// Garbage in preferences falls back to the default
	app.Preferences().SetString(KeyLineCap, "zigzag")
	if lc := settings.GetLineCap(); lc != DefaultLineCap {
		t.Errorf("Invalid stored line cap should fall back to %s, got %s", DefaultLineCap, lc)
	}
}

func TestTrackInset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if inset := settings.GetTrackInset(); inset != DefaultTrackInset {
		t.Errorf("Expected default inset %v, got %v", DefaultTrackInset, inset)
	}

	settings.SetTrackInset(4)
	if inset := settings.GetTrackInset(); inset != 4 {
		t.Errorf("Expected inset 4, got %v", inset)
	}

	settings.SetTrackInset(-1)
	if settings.GetTrackInset() != 0 {
		t.Error("Inset should be clamped to 0")
	}

	settings.SetTrackInset(99)
	if settings.GetTrackInset() != MaxTrackInset {
		t.Errorf("Inset should be clamped to %v", MaxTrackInset)
	}
}

func TestStep(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if step := settings.GetStep(); step != DefaultStep {
		t.Errorf("Expected default step %v, got %v", DefaultStep, step)
	}

	settings.SetStep(0.25)
	if step := settings.GetStep(); step != 0.25 {
		t.Errorf("Expected step 0.25, got %v", step)
	}

	settings.SetStep(3)
	if settings.GetStep() != DefaultStep {
		t.Errorf("Out of range step should fall back to %v", DefaultStep)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLineCapOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLineCapOptions()
	expected := []multiprogress.LineCap{multiprogress.LineCapRound, multiprogress.LineCapSquare, multiprogress.LineCapButt}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d line cap options, got %d", len(expected), len(options))
	}

	for i, lc := range expected {
		if options[i] != lc {
			t.Errorf("Line cap option %d: expected %s, got %s", i, lc, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
