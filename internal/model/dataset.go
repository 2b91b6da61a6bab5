package model

import (
	"errors"
	"fmt"
)

// ErrInconsistentWidth is returned when a row does not match the width of the dataset.
var ErrInconsistentWidth = errors.New("inconsistent row width")

// Dataset is an ordered collection of points of the same width.
type Dataset struct {
	Points []Point
}

// NewDataset creates a dataset out of the given rows.
func NewDataset(rows ...[]float64) (Dataset, error) {
	ds := Dataset{Points: make([]Point, 0, len(rows))}
	for i, row := range rows {
		if err := ds.Add(row); err != nil {
			return Dataset{}, fmt.Errorf("could not add row %d: %w", i, err)
		}
	}
	return ds, nil
}

// Add appends a row to the dataset.
// The first row defines the width, every other row must match it.
func (ds *Dataset) Add(row []float64) error {
	if len(row) < 1 {
		return fmt.Errorf("empty row: %w", ErrInconsistentWidth)
	}
	if len(ds.Points) > 0 && len(row) != ds.Width() {
		return fmt.Errorf("expected %d values but got %d: %w", ds.Width(), len(row), ErrInconsistentWidth)
	}
	ds.Points = append(ds.Points, Point(row))
	return nil
}

// Len returns the number of points.
func (ds Dataset) Len() int {
	return len(ds.Points)
}

// Width is the number of values per row, label included.
// An empty dataset has zero width.
func (ds Dataset) Width() int {
	if len(ds.Points) == 0 {
		return 0
	}
	return len(ds.Points[0])
}

// Dim is the feature dimensionality e.g. the width without the label.
func (ds Dataset) Dim() int {
	if len(ds.Points) == 0 {
		return 0
	}
	return ds.Width() - 1
}
