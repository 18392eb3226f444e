package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got '%s'", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAdvance); got != "Advance" {
		t.Errorf("GetText(KeyAdvance) = '%s', expected 'Advance'", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"},
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%s) -> %s, expected %s", test.lang, l.GetCurrentLanguage(), test.expected)
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText(KeyReset); got != "Сброс" {
		t.Errorf("Expected Russian text for KeyReset, got '%s'", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Unknown key should return itself, got '%s'", got)
	}
}

func TestLocalization_AllLanguagesHaveEveryKey(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		for _, lang := range []string{"ru", "pt"} {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
