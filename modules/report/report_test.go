package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

func sampleResults() []models.Result {
	return []models.Result{
		{
			Algorithm:   "GA",
			StartCity:   0,
			Tour:        []int{0, 2, 1, 3, 0},
			Distance:    123.45,
			Elapsed:     1500 * time.Millisecond,
			Generations: 100,
		},
		{
			Algorithm:   "DE",
			StartCity:   19,
			Tour:        []int{19, 0, 1, 2, 19},
			Distance:    99.5,
			Elapsed:     2 * time.Second,
			Generations: 100,
		},
		{
			Algorithm: "GA2",
			StartCity: 19,
			Err:       errors.New("run GA2 from city 20: boom"),
		},
	}
}

func TestFormatTour(t *testing.T) {
	assert.Equal(t, "1 -> 3 -> 2 -> 4 -> 1", FormatTour([]int{0, 2, 1, 3, 0}))
}

func TestWriteSections(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, sampleResults(), 50, 100, []int{0, 19}))

	text := sb.String()
	assert.Contains(t, text, "TRAVELING SALESMAN PROBLEM - RESULTS REPORT")
	assert.Contains(t, text, "Population Size: 50")
	assert.Contains(t, text, "Number of Generations: 100")
	assert.Contains(t, text, "Starting Cities: [1, 20]")
	assert.Contains(t, text, "Starting City: 1, Algorithm: GA")
	assert.Contains(t, text, "Total Distance: 123.45 units")
	assert.Contains(t, text, "Tour (City IDs): 1 -> 3 -> 2 -> 4 -> 1")
	assert.Contains(t, text, "RUN FAILED")
	assert.Contains(t, text, "PER-ALGORITHM SUMMARY")
	assert.Contains(t, text, "BEST OVERALL SOLUTION")
	// Best is DE from city 20 with distance 99.50.
	assert.Contains(t, text, "Algorithm: DE")
	assert.Contains(t, text, "Starting City: 20")
	assert.Contains(t, text, "Total Distance: 99.50 units")
}

func TestWriteAllFailed(t *testing.T) {
	var sb strings.Builder
	results := []models.Result{{Algorithm: "GA", StartCity: 0, Err: errors.New("boom")}}

	require.NoError(t, Write(&sb, results, 50, 100, []int{0}))
	assert.Contains(t, sb.String(), "No run finished successfully")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results_report.txt")
	require.NoError(t, Save(path, sampleResults(), 200, 1000, []int{0, 19}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "BEST OVERALL SOLUTION")
}
