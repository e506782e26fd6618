package statistics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/utilities"
)

// Summary aggregates every successful run of one algorithm across all
// starting cities.
type Summary struct {
	Algorithm      string
	Runs           int
	MinDistance    float64
	MaxDistance    float64
	MeanDistance   float64
	StdDevDistance float64
	MeanSeconds    float64
}

// Successful filters out failed runs.
func Successful(results []models.Result) []models.Result {
	return utilities.Filter(results, func(r models.Result) bool {
		return r.Err == nil
	})
}

// Failed filters out successful runs.
func Failed(results []models.Result) []models.Result {
	return utilities.Filter(results, func(r models.Result) bool {
		return r.Err != nil
	})
}

// Summarize groups the successful results by algorithm name, in order of
// first appearance, and computes distance and timing summaries.
func Summarize(results []models.Result) []Summary {
	var order []string
	grouped := make(map[string][]models.Result)

	for _, result := range Successful(results) {
		if _, ok := grouped[result.Algorithm]; !ok {
			order = append(order, result.Algorithm)
		}

		grouped[result.Algorithm] = append(grouped[result.Algorithm], result)
	}

	summaries := make([]Summary, 0, len(order))
	for _, algorithm := range order {
		group := grouped[algorithm]

		distances := make([]float64, len(group))
		seconds := make([]float64, len(group))
		for i, result := range group {
			distances[i] = result.Distance
			seconds[i] = result.Elapsed.Seconds()
		}

		summaries = append(summaries, Summary{
			Algorithm:      algorithm,
			Runs:           len(group),
			MinDistance:    floats.Min(distances),
			MaxDistance:    floats.Max(distances),
			MeanDistance:   stat.Mean(distances, nil),
			StdDevDistance: stat.StdDev(distances, nil),
			MeanSeconds:    stat.Mean(seconds, nil),
		})
	}

	return summaries
}

// Best returns the successful result with the smallest distance. The second
// return is false when every run failed.
func Best(results []models.Result) (models.Result, bool) {
	successful := Successful(results)
	if len(successful) == 0 {
		return models.Result{}, false
	}

	distances := make([]float64, len(successful))
	for i, result := range successful {
		distances[i] = result.Distance
	}

	return successful[utilities.MinIndex(distances)], true
}
