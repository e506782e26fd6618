package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/statistics"
)

const lineWide = 80
const lineNarrow = 60

// FormatTour renders a closed tour with 1-based city ids: "1 -> 14 -> ... -> 1".
func FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, city := range tour {
		parts[i] = fmt.Sprintf("%d", city+1)
	}

	return strings.Join(parts, " -> ")
}

// Write renders the plain-text results report: configuration header, one
// detail block per run (failed runs included, with their error), the
// per-algorithm summaries, and the best overall solution.
func Write(w io.Writer, results []models.Result, populationSize, generations int, startCities []int) error {
	rule := strings.Repeat("=", lineWide)
	narrow := strings.Repeat("=", lineNarrow)

	ids := make([]string, len(startCities))
	for i, city := range startCities {
		ids[i] = fmt.Sprintf("%d", city+1)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "TRAVELING SALESMAN PROBLEM - RESULTS REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CONFIGURATION:")
	fmt.Fprintf(w, "  Population Size: %d\n", populationSize)
	fmt.Fprintf(w, "  Number of Generations: %d\n", generations)
	fmt.Fprintf(w, "  Starting Cities: [%s]\n", strings.Join(ids, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DETAILED RESULTS")
	fmt.Fprintln(w, rule)

	for _, result := range results {
		fmt.Fprintln(w)
		fmt.Fprintln(w, narrow)
		fmt.Fprintf(w, "Starting City: %d, Algorithm: %s\n", result.StartCity+1, result.Algorithm)
		fmt.Fprintln(w, narrow)

		if result.Err != nil {
			fmt.Fprintf(w, "  RUN FAILED: %v\n", result.Err)

			continue
		}

		fmt.Fprintf(w, "  Total Distance: %.2f units\n", result.Distance)
		fmt.Fprintf(w, "  Execution Time: %.2f seconds\n", result.Elapsed.Seconds())
		fmt.Fprintf(w, "  Number of Generations: %d\n", result.Generations)
		fmt.Fprintf(w, "  Tour (City IDs): %s\n", FormatTour(result.Tour))
	}

	summaries := statistics.Summarize(results)
	if len(summaries) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "PER-ALGORITHM SUMMARY")
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w)
		for _, summary := range summaries {
			fmt.Fprintf(w, "%s (%d runs):\n", summary.Algorithm, summary.Runs)
			fmt.Fprintf(w, "  Distance min/mean/max: %.2f / %.2f / %.2f (stddev %.2f)\n",
				summary.MinDistance, summary.MeanDistance, summary.MaxDistance, summary.StdDevDistance)
			fmt.Fprintf(w, "  Mean execution time: %.2f seconds\n", summary.MeanSeconds)
			fmt.Fprintln(w)
		}
	}

	best, ok := statistics.Best(results)
	if !ok {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No run finished successfully; no best solution to report.")

		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "BEST OVERALL SOLUTION")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Algorithm: %s\n", best.Algorithm)
	fmt.Fprintf(w, "Starting City: %d\n", best.StartCity+1)
	fmt.Fprintf(w, "Total Distance: %.2f units\n", best.Distance)
	fmt.Fprintf(w, "Execution Time: %.2f seconds\n", best.Elapsed.Seconds())
	fmt.Fprintf(w, "Complete Tour: %s\n", FormatTour(best.Tour))

	return nil
}

// Save writes the report to path, truncating any previous report.
func Save(path string, results []models.Result, populationSize, generations int, startCities []int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	return Write(file, results, populationSize, generations, startCities)
}

// PrintTable prints a compact per-run table to stdout, followed by the best
// overall result.
func PrintTable(results []models.Result) {
	fmt.Printf("\n%-12s %-8s %-12s %-12s %s\n", "Start City", "Algo", "Distance", "Time (s)", "Best Tour")
	fmt.Println(strings.Repeat("-", lineWide))

	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("%-12d %-8s FAILED: %v\n", result.StartCity+1, result.Algorithm, result.Err)

			continue
		}

		preview := result.Tour
		truncated := ""
		if len(preview) > 6 {
			preview = preview[:6]
			truncated = " ..."
		}

		fmt.Printf("%-12d %-8s %-12.2f %-12.2f %s%s\n",
			result.StartCity+1, result.Algorithm, result.Distance, result.Elapsed.Seconds(),
			FormatTour(preview), truncated)
	}

	fmt.Println(strings.Repeat("=", lineWide))

	if best, ok := statistics.Best(results); ok {
		fmt.Printf("Best: %s from city %d, distance %.2f in %.2fs\n",
			best.Algorithm, best.StartCity+1, best.Distance, best.Elapsed.Seconds())
	}
}
