package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconReset    = "⟲"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
	UnitsLabelFormat    = "%d"
)

// Bar sizing
const (
	BarHeight       float32 = 28
	MobileBarHeight float32 = 44

	BarCornerRadius float32 = 6
	BarBorderWidth  float32 = 1

	TitleInset float32 = 6
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 240

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)
