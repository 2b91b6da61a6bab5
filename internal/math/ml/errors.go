package ml

import "errors"

var (
	// ErrInvalidInput is returned for empty centroid sets, empty datasets or dimension mismatches.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyInput is returned when a majority vote is requested on no labels.
	ErrEmptyInput = errors.New("empty input")
)
