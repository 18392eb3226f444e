package ui

// Package ui contains the Fyne demo application for the multiprogress widget.
// It builds a storage-usage style bar from a small data source, wires the
// Advance, Reset and Reload actions and a settings dialog backed by
// config.Settings. All UI strings are localized via Localization.
