package model

// Point is a single labeled row, the feature values followed by the label.
type Point []float64

// NewPoint creates a new point from the given features and label.
func NewPoint(label float64, features ...float64) Point {
	p := make(Point, len(features)+1)
	copy(p, features)
	p[len(features)] = label
	return p
}

// Features returns the feature vector of the point.
// NOTE : the returned slice shares memory with the point.
func (p Point) Features() []float64 {
	return p[:len(p)-1]
}

// Label returns the trailing label value.
func (p Point) Label() float64 {
	return p[len(p)-1]
}

// Dim is the number of features of the point.
func (p Point) Dim() int {
	return len(p) - 1
}
