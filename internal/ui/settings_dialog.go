package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/zxf000000/MultiProgressView/internal/config"
	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	sectionsEntry  *widget.Entry
	unitsEntry     *widget.Entry
	insetEntry     *widget.Entry
	stepEntry      *widget.Entry
	lineCapSelect  *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a successful save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.sectionsEntry = widget.NewEntry()
	sd.sectionsEntry.SetPlaceHolder("1-" + strconv.Itoa(config.MaxSectionCount))

	sd.unitsEntry = widget.NewEntry()
	sd.unitsEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxUnitTotal))

	sd.insetEntry = widget.NewEntry()
	sd.stepEntry = widget.NewEntry()
	sd.stepEntry.SetPlaceHolder("0.05")

	lineCapOptions := []string{}
	for _, lc := range sd.settings.GetLineCapOptions() {
		lineCapOptions = append(lineCapOptions, lc.String())
	}
	sd.lineCapSelect = widget.NewSelect(lineCapOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeySectionCount)+":"),
		sd.sectionsEntry,

		widget.NewLabel(t(KeyUnitTotal)+":"),
		sd.unitsEntry,

		widget.NewLabel(t(KeyLineCap)+":"),
		sd.lineCapSelect,

		widget.NewLabel(t(KeyTrackInset)+":"),
		sd.insetEntry,

		widget.NewLabel(t(KeyStep)+":"),
		sd.stepEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sectionsEntry.SetText(strconv.Itoa(sd.settings.GetSectionCount()))
	sd.unitsEntry.SetText(strconv.Itoa(sd.settings.GetUnitTotal()))
	sd.insetEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetTrackInset()), 'g', -1, 32))
	sd.stepEntry.SetText(strconv.FormatFloat(sd.settings.GetStep(), 'g', -1, 64))
	sd.lineCapSelect.SetSelected(sd.settings.GetLineCap().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if count, err := strconv.Atoi(sd.sectionsEntry.Text); err == nil {
		sd.settings.SetSectionCount(count)
	} else if sd.sectionsEntry.Text != "" {
		log.Printf("Warning: ignoring section count %q: %v", sd.sectionsEntry.Text, err)
	}

	if units, err := strconv.Atoi(sd.unitsEntry.Text); err == nil {
		sd.settings.SetUnitTotal(units)
	} else if sd.unitsEntry.Text != "" {
		log.Printf("Warning: ignoring unit total %q: %v", sd.unitsEntry.Text, err)
	}

	if inset, err := strconv.ParseFloat(sd.insetEntry.Text, 32); err == nil {
		sd.settings.SetTrackInset(float32(inset))
	} else if sd.insetEntry.Text != "" {
		log.Printf("Warning: ignoring track inset %q: %v", sd.insetEntry.Text, err)
	}

	if step, err := strconv.ParseFloat(sd.stepEntry.Text, 64); err == nil {
		sd.settings.SetStep(step)
	} else if sd.stepEntry.Text != "" {
		log.Printf("Warning: ignoring step %q: %v", sd.stepEntry.Text, err)
	}

	if sd.lineCapSelect.Selected != "" {
		if lc, err := multiprogress.ParseLineCap(sd.lineCapSelect.Selected); err == nil {
			sd.settings.SetLineCap(lc)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
