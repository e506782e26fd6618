package evaluation

// Fitness is the total length of the closed cycle
// [start, perm[0], ..., perm[len-1], start]. perm holds the city indices of
// every non-start city, in visiting order. Well-formedness of perm is the
// caller's contract; this function only sums.
func Fitness(distances [][]float64, start int, perm []int) float64 {
	if len(perm) == 0 {
		return 0
	}

	sum := distances[start][perm[0]]
	for i := 0; i < len(perm)-1; i++ {
		sum += distances[perm[i]][perm[i+1]]
	}
	sum += distances[perm[len(perm)-1]][start]

	return sum
}

// CycleLength sums a closed tour as produced by models.CloseTour, i.e. the
// first and last entries are the same city.
func CycleLength(distances [][]float64, tour []int) float64 {
	sum := 0.0
	for i := 0; i < len(tour)-1; i++ {
		sum += distances[tour[i]][tour[i+1]]
	}

	return sum
}
