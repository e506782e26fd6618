package experiment

// algorithmTemplate is one algorithm entry of a plan before being bound to a
// start city. The set of algorithms is data, not code: adding a variant means
// adding a template.
type algorithmTemplate struct {
	Name    string
	Label   string
	Variant Variant

	CrossoverRate float64
	MutationRate  float64
	Weight        float64
	Seed          int64
}

// defaultAlgorithms reproduces the coursework setup: a baseline GA, a
// "modified" GA with more aggressive variation and a different seed, and the
// random-key Differential Evolution adaptation.
var defaultAlgorithms = []algorithmTemplate{
	{
		Name:          "GA",
		Label:         "Genetic Algorithm (GA)",
		Variant:       GeneticAlgorithm,
		CrossoverRate: 0.9,
		MutationRate:  0.1,
		Seed:          42,
	},
	{
		Name:          "GA2",
		Label:         "Modified Genetic Algorithm (GA-2)",
		Variant:       GeneticAlgorithm,
		CrossoverRate: 0.95,
		MutationRate:  0.2,
		Seed:          123,
	},
	{
		Name:          "DE",
		Label:         "Differential Evolution (DE)",
		Variant:       DifferentialEvolution,
		CrossoverRate: 0.9,
		Weight:        0.5,
		Seed:          7,
	},
}

// Plan crosses the start cities with the default algorithm set at the given
// population/generation budget. Start cities are 0-based indices.
func Plan(startCities []int, populationSize, generations int) []RunConfig {
	configs := make([]RunConfig, 0, len(startCities)*len(defaultAlgorithms))

	for _, start := range startCities {
		for _, algorithm := range defaultAlgorithms {
			configs = append(configs, RunConfig{
				Name:      algorithm.Name,
				Label:     algorithm.Label,
				Variant:   algorithm.Variant,
				StartCity: start,
				Parameters: Parameters{
					PopulationSize: populationSize,
					Generations:    generations,
					CrossoverRate:  algorithm.CrossoverRate,
					MutationRate:   algorithm.MutationRate,
					Weight:         algorithm.Weight,
					Seed:           algorithm.Seed,
				},
			})
		}
	}

	return configs
}

// FullPlan is the submission run: five starting cities (ids 1, 10, 20, 30,
// 40), large budget.
func FullPlan() []RunConfig {
	return Plan([]int{0, 9, 19, 29, 39}, 200, 1000)
}

// QuickPlan is the smoke-test run: two starting cities, small budget.
func QuickPlan() []RunConfig {
	return Plan([]int{0, 19}, 50, 100)
}
