package ui

import (
	"github.com/zxf000000/MultiProgressView/internal/config"
	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

// StorageCategories names the demo sections in order
var StorageCategories = []string{"Apps", "Photos", "Music", "Video", "Documents", "Mail", "Messages", "Books", "Podcasts", "Games", "Backups", "Other"}

// StorageSource feeds a MultiProgressView from the demo settings.
// Its capacity is the configured unit total, or normalized when that is 0.
type StorageSource struct {
	settings *config.Settings
}

// NewStorageSource creates a data source backed by settings
func NewStorageSource(settings *config.Settings) *StorageSource {
	return &StorageSource{settings: settings}
}

// NumberOfSections implements multiprogress.DataSource
func (s *StorageSource) NumberOfSections(*multiprogress.MultiProgressView) int {
	return s.settings.GetSectionCount()
}

// Section implements multiprogress.DataSource
func (s *StorageSource) Section(_ *multiprogress.MultiProgressView, index int) *multiprogress.Section {
	section := multiprogress.NewSection(SectionColor(index))
	section.Title = CategoryName(index)
	section.TitleInsets = multiprogress.Insets{Left: 2, Right: 2}
	return section
}

// NumberOfUnits implements multiprogress.UnitsDataSource
func (s *StorageSource) NumberOfUnits(*multiprogress.MultiProgressView) int {
	return s.settings.GetUnitTotal()
}

// CategoryName returns the display name of a section index
func CategoryName(index int) string {
	if index >= 0 && index < len(StorageCategories) {
		return StorageCategories[index]
	}
	return StorageCategories[len(StorageCategories)-1]
}
