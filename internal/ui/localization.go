package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyAdvance       = "advance"
	KeyReset         = "reset"
	KeyReload        = "reload"
	KeySettings      = "settings"
	KeyLanguage      = "language"
	KeySectionCount  = "section_count"
	KeyUnitTotal     = "unit_total"
	KeyLineCap       = "line_cap"
	KeyTrackInset    = "track_inset"
	KeyStep          = "step"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyTrackTitle    = "track_title"
	KeySectionTapped = "section_tapped"
	KeyTotalFormat   = "total_format"
	KeyCapacityFull  = "capacity_full"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "MultiProgressView Demo",
		KeyAdvance:       "Advance",
		KeyReset:         "Reset",
		KeyReload:        "Reload",
		KeySettings:      "Settings",
		KeyLanguage:      "Language",
		KeySectionCount:  "Sections",
		KeyUnitTotal:     "Total units (0 = normalized)",
		KeyLineCap:       "Line cap",
		KeyTrackInset:    "Track inset",
		KeyStep:          "Advance step",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyTrackTitle:    "Storage",
		KeySectionTapped: "Section %d tapped: %s",
		KeyTotalFormat:   "Used %s of %s",
		KeyCapacityFull:  "Capacity reached",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Демо MultiProgressView",
		KeyAdvance:       "Вперёд",
		KeyReset:         "Сброс",
		KeyReload:        "Перезагрузить",
		KeySettings:      "Настройки",
		KeyLanguage:      "Язык",
		KeySectionCount:  "Секции",
		KeyUnitTotal:     "Всего единиц (0 = доли)",
		KeyLineCap:       "Концы полосы",
		KeyTrackInset:    "Отступ дорожки",
		KeyStep:          "Шаг",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyTrackTitle:    "Хранилище",
		KeySectionTapped: "Нажата секция %d: %s",
		KeyTotalFormat:   "Занято %s из %s",
		KeyCapacityFull:  "Ёмкость исчерпана",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Demo MultiProgressView",
		KeyAdvance:       "Avançar",
		KeyReset:         "Zerar",
		KeyReload:        "Recarregar",
		KeySettings:      "Configurações",
		KeyLanguage:      "Idioma",
		KeySectionCount:  "Seções",
		KeyUnitTotal:     "Total de unidades (0 = normalizado)",
		KeyLineCap:       "Terminação",
		KeyTrackInset:    "Recuo da trilha",
		KeyStep:          "Passo",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyTrackTitle:    "Armazenamento",
		KeySectionTapped: "Seção %d tocada: %s",
		KeyTotalFormat:   "Usado %s de %s",
		KeyCapacityFull:  "Capacidade atingida",
	}
}
