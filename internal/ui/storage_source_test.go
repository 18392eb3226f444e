package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxf000000/MultiProgressView/internal/config"
	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

func TestStorageSource_FollowsSettings(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetSectionCount(3)
	settings.SetUnitTotal(64)

	source := NewStorageSource(settings)
	var _ multiprogress.UnitsDataSource = source

	view := multiprogress.NewMultiProgressView(source)
	require.Equal(t, 3, view.NumberOfSections())
	assert.Equal(t, 64.0, view.Capacity())
	assert.Equal(t, "Apps", view.Section(0).Title)
	assert.Equal(t, "Music", view.Section(2).Title)
	assert.Equal(t, SectionColor(1), view.Section(1).FillColor)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Apps", CategoryName(0))
	assert.Equal(t, "Other", CategoryName(len(StorageCategories)-1))
	assert.Equal(t, "Other", CategoryName(99))
	assert.Equal(t, "Other", CategoryName(-1))
}

func TestSectionColor_Cycles(t *testing.T) {
	assert.Equal(t, SectionPalette[0], SectionColor(0))
	assert.Equal(t, SectionPalette[1], SectionColor(len(SectionPalette)+1))
	assert.Equal(t, SectionPalette[len(SectionPalette)-2], SectionColor(-2))
}

func TestSectionColor_MinInt(t *testing.T) {
	require.Len(t, SectionPalette, 6)
	assert.NotPanics(t, func() { SectionColor(math.MinInt) })
	// -2^63 is -2 modulo 6
	assert.Equal(t, SectionPalette[4], SectionColor(math.MinInt))
}
