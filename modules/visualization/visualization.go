package visualization

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/enescunediogluu/traveling-salesman-problem/modules/models"
)

var (
	cityGray  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	tourBlue  = color.RGBA{R: 40, G: 80, B: 200, A: 255}
	startRed  = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	barColors = []color.RGBA{
		{R: 70, G: 120, B: 200, A: 255},
		{R: 230, G: 150, B: 60, A: 255},
		{R: 80, G: 170, B: 90, A: 255},
		{R: 180, G: 90, B: 180, A: 255},
	}
)

// tourPlot builds a single tour panel: every city as a gray point, the tour
// as a line over highlighted points, the start city emphasized, and 1-based
// id labels next to each city.
func tourPlot(cities []models.City, result models.Result, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"

	// Background layer: every city.
	allPts := make(plotter.XYs, len(cities))
	for i, city := range cities {
		allPts[i].X = city.X
		allPts[i].Y = city.Y
	}

	allScatter, err := plotter.NewScatter(allPts)
	if err != nil {
		return nil, err
	}
	allScatter.GlyphStyle.Color = cityGray
	allScatter.GlyphStyle.Radius = vg.Points(3)

	// Tour path, following the closed cycle.
	tourPts := make(plotter.XYs, len(result.Tour))
	for i, cityIndex := range result.Tour {
		tourPts[i].X = cities[cityIndex].X
		tourPts[i].Y = cities[cityIndex].Y
	}

	tourLine, err := plotter.NewLine(tourPts)
	if err != nil {
		return nil, err
	}
	tourLine.LineStyle.Color = tourBlue
	tourLine.LineStyle.Width = vg.Points(1.5)

	visited, err := plotter.NewScatter(tourPts[1 : len(tourPts)-1])
	if err != nil {
		return nil, err
	}
	visited.GlyphStyle.Color = tourBlue
	visited.GlyphStyle.Radius = vg.Points(3)
	visited.GlyphStyle.Shape = draw.CircleGlyph{}

	start, err := plotter.NewScatter(plotter.XYs{tourPts[0]})
	if err != nil {
		return nil, err
	}
	start.GlyphStyle.Color = startRed
	start.GlyphStyle.Radius = vg.Points(6)
	start.GlyphStyle.Shape = draw.PyramidGlyph{}

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(cities)),
		Labels: make([]string, len(cities)),
	}
	for i, city := range cities {
		labels.XYs[i].X = city.X
		labels.XYs[i].Y = city.Y
		labels.Labels[i] = fmt.Sprintf("%d", city.ID)
	}

	cityLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}

	p.Add(plotter.NewGrid(), allScatter, tourLine, visited, start, cityLabels)
	p.Legend.Add("all cities", allScatter)
	p.Legend.Add("tour", tourLine)
	p.Legend.Add(fmt.Sprintf("start city %d", result.StartCity+1), start)
	p.Legend.Top = true

	return p, nil
}

// SaveTourPlot renders one run's tour to a PNG file.
func SaveTourPlot(cities []models.City, result models.Result, title, path string) error {
	p, err := tourPlot(cities, result, title)
	if err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// SaveComparisonGrid renders one panel per result into a single PNG, one row
// per starting city and one column per algorithm. The results are laid out in
// the order given, cols panels per row.
func SaveComparisonGrid(cities []models.City, results []models.Result, cols int, path string) error {
	if cols <= 0 || len(results) == 0 {
		return fmt.Errorf("comparison grid needs results and a positive column count")
	}

	rows := (len(results) + cols - 1) / cols
	plots := make([][]*plot.Plot, rows)

	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
		for j := range plots[i] {
			index := i*cols + j
			if index >= len(results) {
				continue
			}

			result := results[index]
			if result.Err != nil {
				empty := plot.New()
				empty.Title.Text = fmt.Sprintf("%s - Start City %d (failed)", result.Algorithm, result.StartCity+1)
				plots[i][j] = empty

				continue
			}

			title := fmt.Sprintf("%s - Start City %d\nDistance: %.2f, Time: %.2fs",
				result.Algorithm, result.StartCity+1, result.Distance, result.Elapsed.Seconds())

			p, err := tourPlot(cities, result, title)
			if err != nil {
				return err
			}
			p.Legend.Top = false

			plots[i][j] = p
		}
	}

	img := vgimg.New(vg.Length(cols)*6*vg.Inch, vg.Length(rows)*4.5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return err
	}

	return nil
}

// SavePerformanceChart renders grouped bar charts of best distance and
// elapsed seconds per starting city, one bar group per algorithm, into a
// single side-by-side PNG.
func SavePerformanceChart(results []models.Result, path string) error {
	var (
		algorithms []string
		starts     []int
	)
	seenAlgorithm := make(map[string]bool)
	seenStart := make(map[int]bool)
	byKey := make(map[string]models.Result)

	for _, result := range results {
		if result.Err != nil {
			continue
		}

		if !seenAlgorithm[result.Algorithm] {
			seenAlgorithm[result.Algorithm] = true
			algorithms = append(algorithms, result.Algorithm)
		}

		if !seenStart[result.StartCity] {
			seenStart[result.StartCity] = true
			starts = append(starts, result.StartCity)
		}

		byKey[fmt.Sprintf("%s/%d", result.Algorithm, result.StartCity)] = result
	}

	if len(algorithms) == 0 {
		return fmt.Errorf("performance chart needs at least one successful result")
	}

	distancePlot := plot.New()
	distancePlot.Title.Text = "Distance Comparison Across Algorithms"
	distancePlot.X.Label.Text = "Starting City"
	distancePlot.Y.Label.Text = "Total Distance"

	timePlot := plot.New()
	timePlot.Title.Text = "Execution Time Comparison"
	timePlot.X.Label.Text = "Starting City"
	timePlot.Y.Label.Text = "Execution Time (seconds)"

	barWidth := vg.Points(18)
	for a, algorithm := range algorithms {
		distances := make(plotter.Values, len(starts))
		seconds := make(plotter.Values, len(starts))
		for s, start := range starts {
			if result, ok := byKey[fmt.Sprintf("%s/%d", algorithm, start)]; ok {
				distances[s] = result.Distance
				seconds[s] = result.Elapsed.Seconds()
			}
		}

		distanceBars, err := plotter.NewBarChart(distances, barWidth)
		if err != nil {
			return err
		}

		timeBars, err := plotter.NewBarChart(seconds, barWidth)
		if err != nil {
			return err
		}

		shade := barColors[a%len(barColors)]
		offset := vg.Length(a-len(algorithms)/2) * barWidth
		for _, bars := range []*plotter.BarChart{distanceBars, timeBars} {
			bars.Color = shade
			bars.LineStyle.Width = 0
			bars.Offset = offset
		}

		distancePlot.Add(distanceBars)
		distancePlot.Legend.Add(algorithm, distanceBars)
		timePlot.Add(timeBars)
		timePlot.Legend.Add(algorithm, timeBars)
	}

	cityNames := make([]string, len(starts))
	for i, start := range starts {
		cityNames[i] = fmt.Sprintf("City %d", start+1)
	}
	distancePlot.NominalX(cityNames...)
	distancePlot.Legend.Top = true
	timePlot.NominalX(cityNames...)
	timePlot.Legend.Top = true

	img := vgimg.New(14*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter * 4}

	plots := [][]*plot.Plot{{distancePlot, timePlot}}
	canvases := plot.Align(plots, tiles, dc)
	distancePlot.Draw(canvases[0][0])
	timePlot.Draw(canvases[0][1])

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return err
	}

	return nil
}
