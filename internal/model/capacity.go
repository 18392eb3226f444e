package model

import (
	"errors"
	"fmt"
	"math"
)

// NormalizedCapacity is the capacity used when no unit total is configured
const NormalizedCapacity = 1.0

// ErrSectionOutOfRange is returned when a section index does not exist
var ErrSectionOutOfRange = errors.New("section index out of range")

// Tracker keeps progress for an ordered set of sections whose sum never
// exceeds a shared capacity.
type Tracker struct {
	capacity float64
	progress []float64
	total    float64
}

// NewTracker creates an empty tracker with the given capacity
func NewTracker(capacity float64) *Tracker {
	return &Tracker{capacity: sanitizeCapacity(capacity)}
}

func sanitizeCapacity(capacity float64) float64 {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return NormalizedCapacity
	}
	return capacity
}

// Reset drops all progress and resizes the tracker to count sections
func (t *Tracker) Reset(count int, capacity float64) {
	if count < 0 {
		count = 0
	}
	t.capacity = sanitizeCapacity(capacity)
	t.progress = make([]float64, count)
	t.total = 0
}

// Count returns the number of sections
func (t *Tracker) Count() int {
	return len(t.progress)
}

// Capacity returns the maximum combined progress
func (t *Tracker) Capacity() float64 {
	return t.capacity
}

// Total returns the combined progress of all sections
func (t *Tracker) Total() float64 {
	return t.total
}

// Remaining returns the capacity not yet claimed by any section
func (t *Tracker) Remaining() float64 {
	return math.Max(0, t.capacity-t.total)
}

// Progress returns the progress of a section, 0 for unknown sections
func (t *Tracker) Progress(section int) float64 {
	if section < 0 || section >= len(t.progress) {
		return 0
	}
	return t.progress[section]
}

// Fraction returns the share of the capacity held by a section
func (t *Tracker) Fraction(section int) float64 {
	return t.Progress(section) / t.capacity
}

// Fractions returns the share of every section in order
func (t *Tracker) Fractions() []float64 {
	fractions := make([]float64, len(t.progress))
	for i, p := range t.progress {
		fractions[i] = p / t.capacity
	}
	return fractions
}

// Set stores progress for a section and returns the applied value.
// The value is clamped so the section may reclaim its own share but never
// exceed what is left of the capacity.
func (t *Tracker) Set(section int, value float64) (float64, error) {
	if section < 0 || section >= len(t.progress) {
		return 0, fmt.Errorf("set progress of section %d (count %d): %w", section, len(t.progress), ErrSectionOutOfRange)
	}
	if math.IsNaN(value) {
		value = 0
	}

	others := t.total - t.progress[section]
	applied := math.Max(0, math.Min(value, t.capacity-others))

	t.progress[section] = applied
	t.total = t.sum()
	// rounding in the sum may overshoot the capacity by an ulp
	for t.total > t.capacity && applied > 0 {
		applied = math.Max(0, math.Nextafter(applied, 0))
		t.progress[section] = applied
		t.total = t.sum()
	}
	return applied, nil
}

func (t *Tracker) sum() float64 {
	total := 0.0
	for _, p := range t.progress {
		total += p
	}
	return total
}

// Advance adds by to the current progress of a section
func (t *Tracker) Advance(section int, by float64) (float64, error) {
	return t.Set(section, t.Progress(section)+by)
}

// Clear zeroes every section one at a time
func (t *Tracker) Clear() {
	for i := range t.progress {
		// index is always valid here
		_, _ = t.Set(i, 0)
	}
	t.total = 0
}
