package multiprogress

// DataSource supplies the sections of a MultiProgressView.
// It is queried on every ReloadData call.
type DataSource interface {
	NumberOfSections(view *MultiProgressView) int
	Section(view *MultiProgressView, index int) *Section
}

// UnitsDataSource is a DataSource whose capacity is a whole number of units.
// A non-positive unit count falls back to the normalized capacity.
type UnitsDataSource interface {
	DataSource
	NumberOfUnits(view *MultiProgressView) int
}

// DataSourceFuncs adapts plain functions to UnitsDataSource.
// Nil functions report zero sections or zero units.
type DataSourceFuncs struct {
	SectionCount func() int
	SectionAt    func(index int) *Section
	UnitCount    func() int
}

// NumberOfSections implements DataSource
func (f DataSourceFuncs) NumberOfSections(*MultiProgressView) int {
	if f.SectionCount == nil {
		return 0
	}
	return f.SectionCount()
}

// Section implements DataSource
func (f DataSourceFuncs) Section(_ *MultiProgressView, index int) *Section {
	if f.SectionAt == nil {
		return nil
	}
	return f.SectionAt(index)
}

// NumberOfUnits implements UnitsDataSource
func (f DataSourceFuncs) NumberOfUnits(*MultiProgressView) int {
	if f.UnitCount == nil {
		return 0
	}
	return f.UnitCount()
}
