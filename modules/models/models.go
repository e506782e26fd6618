package models

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared by every module. Callers wrap them with %w and
// match with errors.Is.
var (
	// ErrDataFormat marks a malformed dataset file: ragged rows, non-numeric
	// values, duplicate ids, a non-square matrix. Fatal to the whole run.
	ErrDataFormat = errors.New("tsp: malformed dataset")

	// ErrInvalidConfiguration marks a run configuration that cannot be
	// executed (non-positive population or generation count, start city out
	// of range). Fatal for that run only.
	ErrInvalidConfiguration = errors.New("tsp: invalid configuration")

	// ErrSearchFailure marks an unexpected condition inside a search engine.
	// Independent runs are unaffected.
	ErrSearchFailure = errors.New("tsp: search failure")
)

// City is a single location from the coordinate file. Ids are 1-based in the
// file; everywhere else cities are addressed by their 0-based index.
type City struct {
	ID int
	X  float64
	Y  float64
}

// Dataset bundles the city list with the precomputed distance matrix.
// Immutable after loading.
type Dataset struct {
	Cities    []City
	Distances [][]float64
}

func (d *Dataset) Size() int {
	return len(d.Cities)
}

// Validate cross-checks the two files against each other: the matrix must be
// square and its dimension must equal the city count.
func (d *Dataset) Validate() error {
	n := len(d.Cities)
	if n == 0 {
		return fmt.Errorf("%w: empty city list", ErrDataFormat)
	}

	if len(d.Distances) != n {
		return fmt.Errorf("%w: %d cities but %d matrix rows", ErrDataFormat, n, len(d.Distances))
	}

	for i, row := range d.Distances {
		if len(row) != n {
			return fmt.Errorf("%w: matrix row %d has %d columns, want %d", ErrDataFormat, i, len(row), n)
		}
	}

	return nil
}

// Result is the outcome of one (start city, algorithm) run. Tour is a closed
// cycle: len(Tour) == n+1 and Tour[0] == Tour[n] == StartCity. When Err is
// set the remaining fields are zero.
type Result struct {
	Algorithm   string
	StartCity   int
	Tour        []int
	Distance    float64
	Elapsed     time.Duration
	Generations int
	Err         error
}

// ValidatePermutation checks that perm contains every value of values exactly
// once, in any order.
func ValidatePermutation(perm []int, values []int) error {
	if len(perm) != len(values) {
		return fmt.Errorf("%w: permutation length %d, want %d", ErrSearchFailure, len(perm), len(values))
	}

	want := make(map[int]int, len(values))
	for _, v := range values {
		want[v]++
	}

	for _, v := range perm {
		want[v]--
		if want[v] < 0 {
			return fmt.Errorf("%w: unexpected or duplicate city %d in permutation", ErrSearchFailure, v)
		}
	}

	return nil
}

// CloseTour builds the closed cycle [start, perm..., start] from a
// permutation of the non-start cities.
func CloseTour(start int, perm []int) []int {
	tour := make([]int, 0, len(perm)+2)
	tour = append(tour, start)
	tour = append(tour, perm...)
	tour = append(tour, start)

	return tour
}

// ValidateTour enforces the cycle invariants on a closed tour over n cities.
func ValidateTour(tour []int, n int, start int) error {
	if len(tour) != n+1 {
		return fmt.Errorf("%w: tour length %d, want %d", ErrSearchFailure, len(tour), n+1)
	}

	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour does not start and end at city %d", ErrSearchFailure, start)
	}

	seen := make([]bool, n)
	for _, c := range tour[:n] {
		if c < 0 || c >= n {
			return fmt.Errorf("%w: city %d out of range", ErrSearchFailure, c)
		}

		if seen[c] {
			return fmt.Errorf("%w: city %d visited twice", ErrSearchFailure, c)
		}

		seen[c] = true
	}

	return nil
}

// CitiesToVisit lists every city index except start, in ascending order. The
// search engines permute this list.
func CitiesToVisit(n, start int) []int {
	cities := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != start {
			cities = append(cities, i)
		}
	}

	return cities
}
