package ml

import (
	"fmt"
	"sort"
)

// MajorityVote returns the most frequent label.
// Among equally frequent labels the smallest one wins, since it is reached first in sorted order.
// Labels are categorical codes and are compared exactly.
func MajorityVote(labels []float64) (float64, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("no labels to vote on: %w", ErrEmptyInput)
	}

	sorted := make([]float64, len(labels))
	copy(sorted, labels)
	sort.Float64s(sorted)

	majority := sorted[0]
	majorityCount := 1
	current := sorted[0]
	currentCount := 1
	for _, l := range sorted[1:] {
		if l != current {
			current = l
			currentCount = 1
			continue
		}
		currentCount++
		if currentCount > majorityCount {
			majority = current
			majorityCount = currentCount
		}
	}
	return majority, nil
}
