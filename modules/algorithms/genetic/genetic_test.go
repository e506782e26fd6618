package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/evaluation"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

// rectangle is a 4-city instance with a unique optimal cycle length of 8
// (the perimeter), verifiable by enumerating all 3! = 6 permutations.
var rectangle = [][]float64{
	{0, 1, math.Sqrt(10), 3},
	{1, 0, 3, math.Sqrt(10)},
	{math.Sqrt(10), 3, 0, 1},
	{3, math.Sqrt(10), 1, 0},
}

func bruteForceOptimum(t *testing.T, distances [][]float64, start int) float64 {
	t.Helper()

	cities := models.CitiesToVisit(len(distances), start)
	best := math.Inf(1)

	var permute func(perm []int, k int)
	permute = func(perm []int, k int) {
		if k == len(perm) {
			if d := evaluation.Fitness(distances, start, perm); d < best {
				best = d
			}

			return
		}

		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(perm, k+1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(cities, 0)

	return best
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	cases := map[string]Config{
		"zero population":      {PopulationSize: 0, Generations: 10},
		"negative population":  {PopulationSize: -5, Generations: 10},
		"zero generations":     {PopulationSize: 10, Generations: 0},
		"negative generations": {PopulationSize: 10, Generations: -1},
	}

	for name, config := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(rectangle, 0, config)
			assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
		})
	}

	_, err := New(rectangle, 4, Config{PopulationSize: 10, Generations: 10})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)

	_, err = New(rectangle, -1, Config{PopulationSize: 10, Generations: 10})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	config := Config{
		PopulationSize: 20,
		Generations:    40,
		CrossoverRate:  0.9,
		MutationRate:   0.1,
		Seed:           42,
	}

	first, err := New(rectangle, 0, config)
	require.NoError(t, err)
	first.Run()

	second, err := New(rectangle, 0, config)
	require.NoError(t, err)
	second.Run()

	assert.Equal(t, first.BestPermutation, second.BestPermutation)
	assert.Equal(t, first.BestDistance, second.BestDistance)
	assert.Equal(t, first.BestAtGeneration, second.BestAtGeneration)
}

func TestRunFindsKnownOptimum(t *testing.T) {
	optimum := bruteForceOptimum(t, rectangle, 0)
	require.InDelta(t, 8.0, optimum, 1e-12)

	for _, start := range []int{0, 2} {
		engine, err := New(rectangle, start, Config{
			PopulationSize: 30,
			Generations:    100,
			CrossoverRate:  0.9,
			MutationRate:   0.2,
			Seed:           42,
		})
		require.NoError(t, err)

		engine.Run()
		assert.InDelta(t, bruteForceOptimum(t, rectangle, start), engine.BestDistance, 1e-9)
	}
}

func TestRunProducesValidPermutation(t *testing.T) {
	// A larger asymmetric-ish instance; validity must hold regardless of
	// distances.
	n := 12
	distances := make([][]float64, n)
	for i := range distances {
		distances[i] = make([]float64, n)
		for j := range distances[i] {
			if i != j {
				distances[i][j] = float64((i*7+j*13)%29 + 1)
			}
		}
	}

	engine, err := New(distances, 3, Config{
		PopulationSize: 25,
		Generations:    60,
		CrossoverRate:  0.95,
		MutationRate:   0.2,
		Seed:           123,
	})
	require.NoError(t, err)

	engine.Run()

	require.NoError(t, models.ValidatePermutation(engine.BestPermutation, models.CitiesToVisit(n, 3)))
	assert.GreaterOrEqual(t, engine.BestDistance, 0.0)
	assert.InDelta(t, evaluation.Fitness(distances, 3, engine.BestPermutation), engine.BestDistance, 1e-12)
}
