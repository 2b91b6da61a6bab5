package math

import (
	"strconv"
	"strings"
)

// Format formats a float with two decimals.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatVector formats every component of the vector with two decimals.
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = Format(f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
