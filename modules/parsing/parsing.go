package parsing

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

// ParseCityFile reads the coordinate file: one "id x y" row per city,
// whitespace-delimited, blank lines skipped. Ids must be unique.
func ParseCityFile(path string) ([]models.City, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	var cities []models.City
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s line %d: want 3 fields, got %d", models.ErrDataFormat, path, lineNumber, len(fields))
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad city id %q", models.ErrDataFormat, path, lineNumber, fields[0])
		}

		if seen[id] {
			return nil, fmt.Errorf("%w: %s line %d: duplicate city id %d", models.ErrDataFormat, path, lineNumber, id)
		}
		seen[id] = true

		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad x coordinate %q", models.ErrDataFormat, path, lineNumber, fields[1])
		}

		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad y coordinate %q", models.ErrDataFormat, path, lineNumber, fields[2])
		}

		cities = append(cities, models.City{ID: id, X: x, Y: y})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: %s contains no cities", models.ErrDataFormat, path)
	}

	return cities, nil
}

// ParseDistanceMatrix reads the intercity distance file: N rows of N
// whitespace-delimited numbers, blank lines skipped. The matrix must be
// square and its entries non-negative.
func ParseDistanceMatrix(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	var matrix [][]float64

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: bad distance %q", models.ErrDataFormat, path, lineNumber, field)
			}

			if value < 0 {
				return nil, fmt.Errorf("%w: %s line %d: negative distance %v", models.ErrDataFormat, path, lineNumber, value)
			}

			row[i] = value
		}

		matrix = append(matrix, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: %s contains no rows", models.ErrDataFormat, path)
	}

	for i, row := range matrix {
		if len(row) != len(matrix) {
			return nil, fmt.Errorf("%w: %s: matrix is not square, row %d has %d columns for %d rows", models.ErrDataFormat, path, i+1, len(row), len(matrix))
		}
	}

	return matrix, nil
}

// LoadDataset parses both files and cross-validates them. Any failure is
// fatal; no partial dataset is ever returned.
func LoadDataset(cityPath, distancePath string) (*models.Dataset, error) {
	cities, err := ParseCityFile(cityPath)
	if err != nil {
		return nil, err
	}

	matrix, err := ParseDistanceMatrix(distancePath)
	if err != nil {
		return nil, err
	}

	dataset := &models.Dataset{Cities: cities, Distances: matrix}
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	return dataset, nil
}
