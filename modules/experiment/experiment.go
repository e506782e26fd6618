package experiment

import (
	"fmt"
	"time"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/algorithms/differential"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/algorithms/genetic"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

// Variant selects the search engine backing a run.
type Variant string

const (
	GeneticAlgorithm      Variant = "ga"
	DifferentialEvolution Variant = "de"
)

// Parameters is the superset of engine knobs; each variant reads the fields
// it understands. Seed is a base seed, mixed with the start city so every
// run owns an independent deterministic stream.
type Parameters struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	Weight         float64
	Seed           int64
}

// RunConfig describes one (start city, algorithm) run. Name is the short
// algorithm tag used in file names ("GA", "GA2", "DE"); Label is the long
// form used in plot titles and the report.
type RunConfig struct {
	Name       string
	Label      string
	Variant    Variant
	StartCity  int
	Parameters Parameters
}

// deriveSeed mixes the base seed with a stream id using the SplitMix64
// finalizer, so per-run streams stay uncorrelated even for adjacent cities.
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// runOne executes a single configuration to completion and returns a fully
// populated Result.
func runOne(dataset *models.Dataset, config RunConfig) (models.Result, error) {
	n := dataset.Size()
	seed := deriveSeed(config.Parameters.Seed, uint64(config.StartCity)+1)

	var (
		perm        []int
		distance    float64
		generations = config.Parameters.Generations
	)

	started := time.Now()
	switch config.Variant {
	case GeneticAlgorithm:
		engine, err := genetic.New(dataset.Distances, config.StartCity, genetic.Config{
			PopulationSize: config.Parameters.PopulationSize,
			Generations:    config.Parameters.Generations,
			CrossoverRate:  config.Parameters.CrossoverRate,
			MutationRate:   config.Parameters.MutationRate,
			Seed:           seed,
		})
		if err != nil {
			return models.Result{}, err
		}

		engine.Run()
		perm, distance = engine.BestPermutation, engine.BestDistance

	case DifferentialEvolution:
		engine, err := differential.New(dataset.Distances, config.StartCity, differential.Config{
			PopulationSize: config.Parameters.PopulationSize,
			Generations:    config.Parameters.Generations,
			Weight:         config.Parameters.Weight,
			CrossoverRate:  config.Parameters.CrossoverRate,
			Seed:           seed,
		})
		if err != nil {
			return models.Result{}, err
		}

		engine.Run()
		perm, distance = engine.BestPermutation, engine.BestDistance

	default:
		return models.Result{}, fmt.Errorf("%w: unknown variant %q", models.ErrInvalidConfiguration, config.Variant)
	}
	elapsed := time.Since(started)

	tour := models.CloseTour(config.StartCity, perm)
	if err := models.ValidateTour(tour, n, config.StartCity); err != nil {
		return models.Result{}, err
	}

	return models.Result{
		Algorithm:   config.Name,
		StartCity:   config.StartCity,
		Tour:        tour,
		Distance:    distance,
		Elapsed:     elapsed,
		Generations: generations,
	}, nil
}

// Run executes every configuration sequentially and collects one Result per
// configuration, in order. A failing run yields a Result with Err set and
// does not abort its siblings; runs share nothing but the read-only dataset.
func Run(dataset *models.Dataset, configs []RunConfig) []models.Result {
	results := make([]models.Result, 0, len(configs))

	for _, config := range configs {
		result, err := runOne(dataset, config)
		if err != nil {
			results = append(results, models.Result{
				Algorithm: config.Name,
				StartCity: config.StartCity,
				Err:       fmt.Errorf("run %s from city %d: %w", config.Name, config.StartCity+1, err),
			})

			continue
		}

		results = append(results, result)
	}

	return results
}
