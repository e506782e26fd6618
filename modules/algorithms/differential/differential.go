package differential

import (
	"fmt"
	"math/rand"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/evaluation"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/utilities"
)

const defaultSeed int64 = 1

// Config holds the DE/rand/1/bin knobs. Weight is the differential weight F,
// CrossoverRate the binomial crossover probability CR.
type Config struct {
	PopulationSize int
	Generations    int
	Weight         float64
	CrossoverRate  float64
	Seed           int64
}

// Engine adapts classic Differential Evolution to permutation search with the
// random-key trick: candidates are real vectors of length N-1 and a vector is
// decoded into a tour by stable-sorting the non-start cities by component
// value. All DE arithmetic happens in the continuous space; only evaluation
// decodes.
type Engine struct {
	config        Config
	distances     [][]float64
	start         int
	citiesToVisit []int
	rng           *rand.Rand

	BestPermutation  []int
	BestDistance     float64
	BestAtGeneration int
}

func New(distances [][]float64, start int, config Config) (*Engine, error) {
	if config.PopulationSize <= 0 {
		return nil, fmt.Errorf("%w: population size %d", models.ErrInvalidConfiguration, config.PopulationSize)
	}

	if config.Generations <= 0 {
		return nil, fmt.Errorf("%w: generation count %d", models.ErrInvalidConfiguration, config.Generations)
	}

	// rand/1 mutation draws three distinct partners besides the target.
	if config.PopulationSize < 4 {
		return nil, fmt.Errorf("%w: differential evolution needs a population of at least 4, got %d", models.ErrInvalidConfiguration, config.PopulationSize)
	}

	n := len(distances)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start city %d out of range [0,%d)", models.ErrInvalidConfiguration, start, n)
	}

	seed := config.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Engine{
		config:        config,
		distances:     distances,
		start:         start,
		citiesToVisit: models.CitiesToVisit(n, start),
		rng:           rand.New(rand.NewSource(seed)),
		BestDistance:  -1,
	}, nil
}

// Decode maps a real vector to a permutation of the non-start cities:
// ascending component order gives the visiting order, ties keep index order.
func Decode(vector []float64, citiesToVisit []int) []int {
	order := utilities.ArgsortStable(vector)

	perm := make([]int, len(order))
	for i, idx := range order {
		perm[i] = citiesToVisit[idx]
	}

	return perm
}

func (e *Engine) Run() {
	popSize := e.config.PopulationSize
	length := len(e.citiesToVisit)

	population := make([][]float64, popSize)
	fitness := make([]float64, popSize)
	for i := range population {
		population[i] = make([]float64, length)
		for j := range population[i] {
			population[i][j] = e.rng.Float64()
		}

		fitness[i] = e.evaluate(population[i])
		e.observeVector(population[i], fitness[i], 0)
	}

	trial := make([]float64, length)

	for generation := 1; generation <= e.config.Generations; generation++ {
		for i := 0; i < popSize; i++ {
			r1, r2, r3 := e.pickPartners(i)

			// Binomial crossover with a forced component so the trial always
			// differs from the target.
			forced := e.rng.Intn(length)
			for j := 0; j < length; j++ {
				if j == forced || e.rng.Float64() < e.config.CrossoverRate {
					trial[j] = population[r1][j] + e.config.Weight*(population[r2][j]-population[r3][j])
				} else {
					trial[j] = population[i][j]
				}
			}

			trialFitness := e.evaluate(trial)
			if trialFitness <= fitness[i] {
				copy(population[i], trial)
				fitness[i] = trialFitness
				e.observeVector(population[i], fitness[i], generation)
			}
		}
	}
}

func (e *Engine) evaluate(vector []float64) float64 {
	return evaluation.Fitness(e.distances, e.start, Decode(vector, e.citiesToVisit))
}

func (e *Engine) observeVector(vector []float64, distance float64, generation int) {
	if e.BestDistance < 0 || distance < e.BestDistance {
		e.BestDistance = distance
		e.BestPermutation = Decode(vector, e.citiesToVisit)
		e.BestAtGeneration = generation
	}
}

// pickPartners draws three distinct population indices, all different from
// target.
func (e *Engine) pickPartners(target int) (int, int, int) {
	popSize := e.config.PopulationSize

	r1 := e.rng.Intn(popSize)
	for r1 == target {
		r1 = e.rng.Intn(popSize)
	}

	r2 := e.rng.Intn(popSize)
	for r2 == target || r2 == r1 {
		r2 = e.rng.Intn(popSize)
	}

	r3 := e.rng.Intn(popSize)
	for r3 == target || r3 == r1 || r3 == r2 {
		r3 = e.rng.Intn(popSize)
	}

	return r1, r2, r3
}
