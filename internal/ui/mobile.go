package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateButtonRow lays buttons out in one row on desktop and a single column on mobile portrait
func (m *MobileUI) CreateButtonRow(objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsPortrait() {
		return container.NewAdaptiveGrid(1, objects...)
	}
	return container.NewAdaptiveGrid(len(objects), objects...)
}

// GetBarHeight returns a bar height large enough to be tapped
func (m *MobileUI) GetBarHeight() float32 {
	if m.IsMobileDevice() {
		return MobileBarHeight
	}
	return BarHeight
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}

// IsPortrait returns true if device is in portrait orientation
func (m *MobileUI) IsPortrait() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}
