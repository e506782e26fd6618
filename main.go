package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/experiment"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/parsing"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/report"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/statistics"
	"github.com/enescunediogluu/traveling-salesman-problem/modules/visualization"
)

func main() {
	quick := flag.Bool("quick", false, "run the reduced smoke-test plan instead of the full submission plan")
	dataDir := flag.String("data", "data", "directory containing cityData.txt and intercityDistance.txt")
	outDir := flag.String("out", "results", "directory for report and plot output")
	flag.Parse()

	configs := experiment.FullPlan()
	mode := "full"
	if *quick {
		configs = experiment.QuickPlan()
		mode = "quick"
	}

	fmt.Println("Traveling Salesman Problem - Evolutionary Algorithms")
	fmt.Printf("Mode: %s (%d runs)\n", mode, len(configs))

	cityPath := filepath.Join(*dataDir, "cityData.txt")
	distancePath := filepath.Join(*dataDir, "intercityDistance.txt")

	dataset, err := parsing.LoadDataset(cityPath, distancePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading data:", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d cities, %dx%d distance matrix\n",
		dataset.Size(), len(dataset.Distances), len(dataset.Distances))

	populationSize := configs[0].Parameters.PopulationSize
	generations := configs[0].Parameters.Generations
	startCities := distinctStartCities(configs)

	fmt.Printf("Population size: %d, generations: %d, starting cities: %v\n",
		populationSize, generations, oneBased(startCities))

	start := time.Now()
	results := runWithProgress(dataset, configs)
	fmt.Printf("All runs finished in %.2fs\n", time.Since(start).Seconds())

	report.PrintTable(results)

	if len(statistics.Successful(results)) == 0 {
		fmt.Fprintln(os.Stderr, "Every run failed; nothing to report.")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating output directory:", err)
		os.Exit(1)
	}

	saveArtifacts(dataset, results, configs, *outDir, populationSize, generations, startCities)
}

// runWithProgress executes the plan one run at a time, printing a progress
// line per run the way the coursework scripts did.
func runWithProgress(dataset *models.Dataset, configs []experiment.RunConfig) []models.Result {
	results := make([]models.Result, 0, len(configs))

	for i, config := range configs {
		fmt.Printf("[%d/%d] %s from city %d (pop %d, gen %d)...",
			i+1, len(configs), config.Name, config.StartCity+1,
			config.Parameters.PopulationSize, config.Parameters.Generations)

		runResults := experiment.Run(dataset, []experiment.RunConfig{config})
		result := runResults[0]
		results = append(results, result)

		if result.Err != nil {
			fmt.Printf(" failed: %v\n", result.Err)

			continue
		}

		fmt.Printf(" distance %.2f in %.2fs\n", result.Distance, result.Elapsed.Seconds())
	}

	return results
}

func saveArtifacts(dataset *models.Dataset, results []models.Result, configs []experiment.RunConfig, outDir string, populationSize, generations int, startCities []int) {
	for _, result := range results {
		if result.Err != nil {
			continue
		}

		title := fmt.Sprintf("%s - Starting from City %d\nTotal Distance: %.2f units, Execution Time: %.2fs",
			labelFor(configs, result), result.StartCity+1, result.Distance, result.Elapsed.Seconds())

		path := filepath.Join(outDir, fmt.Sprintf("tour_%s_start%d.png", result.Algorithm, result.StartCity+1))
		if err := visualization.SaveTourPlot(dataset.Cities, result, title, path); err != nil {
			fmt.Fprintln(os.Stderr, "Error saving tour plot:", err)
		} else {
			fmt.Println("Saved", path)
		}
	}

	gridPath := filepath.Join(outDir, "comparison_all.png")
	if err := visualization.SaveComparisonGrid(dataset.Cities, results, algorithmCount(configs), gridPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving comparison grid:", err)
	} else {
		fmt.Println("Saved", gridPath)
	}

	performancePath := filepath.Join(outDir, "performance_comparison.png")
	if err := visualization.SavePerformanceChart(results, performancePath); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving performance chart:", err)
	} else {
		fmt.Println("Saved", performancePath)
	}

	reportPath := filepath.Join(outDir, "results_report.txt")
	if err := report.Save(reportPath, results, populationSize, generations, startCities); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving report:", err)
	} else {
		fmt.Println("Saved", reportPath)
	}
}

func distinctStartCities(configs []experiment.RunConfig) []int {
	seen := make(map[int]bool)
	var cities []int

	for _, config := range configs {
		if !seen[config.StartCity] {
			seen[config.StartCity] = true
			cities = append(cities, config.StartCity)
		}
	}

	return cities
}

// algorithmCount is the number of distinct algorithm names in the plan; it is
// the column count of the comparison grid.
func algorithmCount(configs []experiment.RunConfig) int {
	seen := make(map[string]bool)
	for _, config := range configs {
		seen[config.Name] = true
	}

	return len(seen)
}

func labelFor(configs []experiment.RunConfig, result models.Result) string {
	for _, config := range configs {
		if config.Name == result.Algorithm {
			return config.Label
		}
	}

	return result.Algorithm
}

func oneBased(cities []int) []int {
	ids := make([]int, len(cities))
	for i, city := range cities {
		ids[i] = city + 1
	}

	return ids
}
