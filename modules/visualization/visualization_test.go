package visualization

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

func toyCities() []models.City {
	return []models.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 0, Y: 1},
		{ID: 3, X: 3, Y: 1},
		{ID: 4, X: 3, Y: 0},
	}
}

func toyResult(algorithm string, start int) models.Result {
	tour := []int{start}
	for i := 0; i < 4; i++ {
		if i != start {
			tour = append(tour, i)
		}
	}
	tour = append(tour, start)

	return models.Result{
		Algorithm: algorithm,
		StartCity: start,
		Tour:      tour,
		Distance:  8,
		Elapsed:   time.Second,
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveTourPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.png")

	err := SaveTourPlot(toyCities(), toyResult("GA", 0), "GA - Starting from City 1", path)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestSaveComparisonGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")

	results := []models.Result{
		toyResult("GA", 0),
		toyResult("DE", 0),
		toyResult("GA", 2),
		{Algorithm: "DE", StartCity: 2, Err: errors.New("boom")},
	}

	require.NoError(t, SaveComparisonGrid(toyCities(), results, 2, path))
	assertPNG(t, path)
}

func TestSaveComparisonGridRejectsEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")

	assert.Error(t, SaveComparisonGrid(toyCities(), nil, 2, path))
	assert.Error(t, SaveComparisonGrid(toyCities(), []models.Result{toyResult("GA", 0)}, 0, path))
}

func TestSavePerformanceChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.png")

	results := []models.Result{
		toyResult("GA", 0),
		toyResult("DE", 0),
		toyResult("GA", 2),
		toyResult("DE", 2),
	}

	require.NoError(t, SavePerformanceChart(results, path))
	assertPNG(t, path)
}

func TestSavePerformanceChartRequiresASuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.png")
	results := []models.Result{{Algorithm: "GA", Err: errors.New("boom")}}

	assert.Error(t, SavePerformanceChart(results, path))
}
