package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square is a symmetric 4-city instance: corners of a 3x1 rectangle.
// Perimeter (0-1-2-3-0) is 8; both diagonals have length sqrt(10).
var square = [][]float64{
	{0, 1, 3.1622776601683795, 3},
	{1, 0, 3, 3.1622776601683795},
	{3.1622776601683795, 3, 0, 1},
	{3, 3.1622776601683795, 1, 0},
}

func TestFitnessKnownSums(t *testing.T) {
	assert.InDelta(t, 8.0, Fitness(square, 0, []int{1, 2, 3}), 1e-12)
	assert.InDelta(t, 8.0, Fitness(square, 0, []int{3, 2, 1}), 1e-12)

	// Crossing tour: both diagonals plus the two long edges.
	crossing := Fitness(square, 0, []int{2, 1, 3})
	assert.InDelta(t, 6+2*3.1622776601683795, crossing, 1e-12)

	assert.Zero(t, Fitness(square, 0, nil))
}

func TestCycleLengthMatchesFitness(t *testing.T) {
	perm := []int{2, 1, 3}
	tour := []int{0, 2, 1, 3, 0}

	require.InDelta(t, Fitness(square, 0, perm), CycleLength(square, tour), 1e-12)
}

func TestCycleLengthRotationInvariant(t *testing.T) {
	// Rotating a closed cycle renames the start but keeps the edge set.
	base := []int{0, 1, 2, 3, 0}
	rotations := [][]int{
		{1, 2, 3, 0, 1},
		{2, 3, 0, 1, 2},
		{3, 0, 1, 2, 3},
	}

	want := CycleLength(square, base)
	for _, rotated := range rotations {
		assert.InDelta(t, want, CycleLength(square, rotated), 1e-12)
	}
}

func TestCycleLengthReversalInvariantOnSymmetricMatrix(t *testing.T) {
	tour := []int{0, 2, 1, 3, 0}
	reversed := []int{0, 3, 1, 2, 0}

	assert.InDelta(t, CycleLength(square, tour), CycleLength(square, reversed), 1e-12)
}
