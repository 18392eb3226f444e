package ui

import (
	"fmt"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/zxf000000/MultiProgressView/internal/config"
	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

// capacityEpsilon absorbs float error when checking for a full bar
const capacityEpsilon = 1e-9

// DemoUI represents the demo window content
type DemoUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	source      *StorageSource
	view        *multiprogress.MultiProgressView
	titleLabel  *widget.Label
	statusLabel *widget.Label

	advanceBtn  *widget.Button
	resetBtn    *widget.Button
	reloadBtn   *widget.Button
	settingsBtn *widget.Button

	// unit total captured at the last reload, 0 for normalized
	units  int
	cursor int
}

// NewDemoUI creates the demo UI and sets it as the window content
func NewDemoUI(window fyne.Window, app fyne.App, settings *config.Settings) *DemoUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	d := &DemoUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		source:       NewStorageSource(settings),
	}
	window.SetContent(d.createUI())
	d.reload()
	return d
}

// View returns the progress widget shown by the demo
func (d *DemoUI) View() *multiprogress.MultiProgressView {
	return d.view
}

func (d *DemoUI) createUI() fyne.CanvasObject {
	d.view = multiprogress.NewMultiProgressView(nil)
	d.view.CornerRadius = BarCornerRadius
	d.view.BorderWidth = BarBorderWidth
	d.view.TrackTitleAlignment = fyne.TextAlignTrailing
	d.view.TrackTitleInsets = multiprogress.Insets{Left: TitleInset, Right: TitleInset}
	d.view.TrackTitleStyle = fyne.TextStyle{Monospace: true}
	d.view.OnSectionTapped = d.onSectionTapped
	d.view.DataSource = d.source

	d.statusLabel = widget.NewLabel("")
	d.statusLabel.Truncation = fyne.TextTruncateEllipsis

	d.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	d.advanceBtn = widget.NewButton("", d.advance)
	d.advanceBtn.Importance = widget.HighImportance
	d.resetBtn = widget.NewButton("", d.reset)
	d.reloadBtn = widget.NewButton("", d.reload)
	d.settingsBtn = widget.NewButton("", d.showSettings)
	d.applyTexts()

	bar := container.New(&barLayout{height: d.mobile.GetBarHeight()}, d.view)
	buttons := d.mobile.CreateButtonRow(d.advanceBtn, d.resetBtn, d.reloadBtn, d.settingsBtn)

	padding := d.mobile.GetMobilePadding()
	return container.NewPadded(container.NewVBox(
		d.titleLabel,
		container.New(&barLayout{height: padding}),
		bar,
		buttons,
		d.statusLabel,
	))
}

// reload applies settings to the bar and rebuilds its sections
func (d *DemoUI) reload() {
	d.view.LineCap = d.settings.GetLineCap()
	d.view.TrackInset = d.settings.GetTrackInset()
	d.units = d.settings.GetUnitTotal()
	d.cursor = 0

	d.view.ReloadData()
	log.Printf("Reloaded %d sections, capacity %v, line cap %s",
		d.view.NumberOfSections(), d.view.Capacity(), d.view.LineCap)

	d.applyTexts()
	d.statusLabel.SetText("")
	d.updateTitle()
}

// applyTexts sets the static labels in the current language
func (d *DemoUI) applyTexts() {
	t := d.localization.GetText
	d.titleLabel.SetText(t(KeyAppTitle))
	d.advanceBtn.SetText(IconPlay + " " + t(KeyAdvance))
	d.resetBtn.SetText(IconReset + " " + t(KeyReset))
	d.reloadBtn.SetText(t(KeyReload))
	d.settingsBtn.SetText(IconSettings + " " + t(KeySettings))
}

// advance grows the next section in round-robin order by one step
func (d *DemoUI) advance() {
	count := d.view.NumberOfSections()
	if count == 0 {
		return
	}
	if d.isFull() {
		d.statusLabel.SetText(d.localization.GetText(KeyCapacityFull))
		return
	}

	section := d.cursor % count
	d.view.Advance(section, d.stepAmount())
	d.cursor = (section + 1) % count

	if d.isFull() {
		d.statusLabel.SetText(d.localization.GetText(KeyCapacityFull))
	}
	d.updateTitle()
}

func (d *DemoUI) reset() {
	d.view.ResetProgress()
	d.cursor = 0
	d.statusLabel.SetText("")
	d.updateTitle()
}

func (d *DemoUI) isFull() bool {
	return d.view.Capacity()-d.view.TotalProgress() < capacityEpsilon
}

// stepAmount converts the configured step share to the capacity scale
func (d *DemoUI) stepAmount() float64 {
	step := d.settings.GetStep()
	if d.units > 0 {
		return math.Max(1, math.Round(step*float64(d.units)))
	}
	return step
}

// formatAmount renders a progress value as units or as a percentage
func (d *DemoUI) formatAmount(value float64) string {
	if d.units > 0 {
		return fmt.Sprintf(UnitsLabelFormat, int(math.Round(value)))
	}
	return fmt.Sprintf(ProgressLabelFormat, int(math.Round(value*100)))
}

func (d *DemoUI) updateTitle() {
	d.view.TrackTitle = fmt.Sprintf(d.localization.GetText(KeyTotalFormat),
		d.formatAmount(d.view.TotalProgress()), d.formatAmount(d.view.Capacity()))
	d.view.Refresh()
}

func (d *DemoUI) onSectionTapped(section int) {
	detail := CategoryName(section) + MiddleDotSeparator + d.formatAmount(d.view.Progress(section))
	d.statusLabel.SetText(fmt.Sprintf(d.localization.GetText(KeySectionTapped), section, detail))
	log.Printf("Section %d tapped, progress %v", section, d.view.Progress(section))
}

func (d *DemoUI) showSettings() {
	NewSettingsDialog(d.settings, d.localization, d.window, d.reload).Show()
}
