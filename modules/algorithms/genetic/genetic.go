package genetic

import (
	"fmt"
	"math/rand"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/evaluation"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

// defaultSeed stands in when Config.Seed is zero, keeping runs reproducible
// by default.
const defaultSeed int64 = 1

// Config holds every knob of the permutation GA. "GA" and "Modified GA" are
// the same engine with different CrossoverRate / MutationRate / Seed.
type Config struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	TournamentSize int
	Seed           int64
}

// Engine runs a genetic algorithm over permutations of the non-start cities:
// order crossover, segment-reversal mutation, tournament selection, and
// elitism of the single best individual.
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

	n := len(distances)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start city %d out of range [0,%d)", models.ErrInvalidConfiguration, start, n)
	}

	if config.TournamentSize <= 0 {
		config.TournamentSize = 3
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

// Run executes the configured number of generations and records the best
// permutation seen anywhere, not just in the final population.
func (e *Engine) Run() {
	popSize := e.config.PopulationSize
	length := len(e.citiesToVisit)

	population := make([][]int, popSize)
	fitness := make([]float64, popSize)
	for i := range population {
		population[i] = e.randomPermutation()
		fitness[i] = evaluation.Fitness(e.distances, e.start, population[i])
		e.observe(population[i], fitness[i], 0)
	}

	next := make([][]int, popSize)
	for i := range next {
		next[i] = make([]int, length)
	}

	for generation := 1; generation <= e.config.Generations; generation++ {
		// Elitism: slot 0 always carries the best individual forward.
		bestInPop := 0
		for i := 1; i < popSize; i++ {
			if fitness[i] < fitness[bestInPop] {
				bestInPop = i
			}
		}
		copy(next[0], population[bestInPop])

		for i := 1; i < popSize; i++ {
			parentA := e.tournament(population, fitness)
			parentB := e.tournament(population, fitness)

			if e.rng.Float64() < e.config.CrossoverRate {
				e.orderCrossover(parentA, parentB, next[i])
			} else {
				copy(next[i], parentA)
			}

			if e.rng.Float64() < e.config.MutationRate {
				e.invertSegment(next[i])
			}
		}

		population, next = next, population
		for i := 0; i < popSize; i++ {
			fitness[i] = evaluation.Fitness(e.distances, e.start, population[i])
			e.observe(population[i], fitness[i], generation)
		}
	}
}

func (e *Engine) observe(perm []int, distance float64, generation int) {
	if e.BestDistance < 0 || distance < e.BestDistance {
		e.BestDistance = distance
		e.BestPermutation = append([]int(nil), perm...)
		e.BestAtGeneration = generation
	}
}

func (e *Engine) randomPermutation() []int {
	perm := append([]int(nil), e.citiesToVisit...)
	e.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	return perm
}

// tournament picks the fittest of TournamentSize uniformly drawn individuals.
func (e *Engine) tournament(population [][]int, fitness []float64) []int {
	best := e.rng.Intn(len(population))
	for k := 1; k < e.config.TournamentSize; k++ {
		candidate := e.rng.Intn(len(population))
		if fitness[candidate] < fitness[best] {
			best = candidate
		}
	}

	return population[best]
}

// orderCrossover (OX) copies a random segment of parentA into child and fills
// the remaining slots with parentB's cities in their parentB order.
func (e *Engine) orderCrossover(parentA, parentB, child []int) {
	length := len(parentA)
	a := e.rng.Intn(length)
	b := e.rng.Intn(length)
	if a > b {
		a, b = b, a
	}

	inSegment := make(map[int]bool, b-a+1)
	for i := a; i <= b; i++ {
		child[i] = parentA[i]
		inSegment[parentA[i]] = true
	}

	position := (b + 1) % length
	for i := 0; i < length; i++ {
		city := parentB[(b+1+i)%length]
		if inSegment[city] {
			continue
		}

		child[position] = city
		position = (position + 1) % length
	}
}

// invertSegment reverses a random slice of the permutation in place
// (inversion mutation).
func (e *Engine) invertSegment(perm []int) {
	length := len(perm)
	if length < 2 {
		return
	}

	a := e.rng.Intn(length)
	b := e.rng.Intn(length)
	if a > b {
		a, b = b, a
	}

	for a < b {
		perm[a], perm[b] = perm[b], perm[a]
		a++
		b--
	}
}
