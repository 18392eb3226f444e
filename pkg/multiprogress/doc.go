// Package multiprogress provides MultiProgressView, a Fyne widget that draws
// one progress track split into several proportionally sized sections.
//
// Sections come from a DataSource and share a single capacity: either the
// normalized 1.0 or, when the source implements UnitsDataSource, a whole
// number of units. Setting the progress of one section never lets the
// combined progress exceed that capacity; out-of-range requests are clamped.
//
// All methods must be called from the Fyne UI goroutine.
package multiprogress
