package batch_report

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNoData = errors.New("no data to plot")

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	step := int(math.Max(1, math.Ceil((max-min)/10)))
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateGCContentPlot draws the per-record GC distribution in 1% bins with
// the normal curve expected from its mean and deviation.
func GenerateGCContentPlot(gcValues []float64) (string, error) {
	if len(gcValues) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Per Sequence GC Content"
	p.X.Label.Text = "GC Content (%)"
	p.Y.Label.Text = "Record Count"

	binCount := 100
	binWidth := 100.0 / float64(binCount)
	observed := make([]float64, binCount)
	for _, val := range gcValues {
		bin := int(val / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		observed[bin]++
	}

	observedXY := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		observedXY[i].X = binWidth*float64(i) + binWidth/2
		observedXY[i].Y = observed[i]
	}
	line, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Observed", line)

	if len(gcValues) > 1 {
		mean := stat.Mean(gcValues, nil)
		stddev := stat.StdDev(gcValues, nil)
		if stddev > 0 {
			normDist := distuv.Normal{Mu: mean, Sigma: stddev}
			scale := float64(len(gcValues)) * binWidth
			expectedXY := make(plotter.XYs, binCount)
			for i := 0; i < binCount; i++ {
				x := binWidth*float64(i) + binWidth/2
				expectedXY[i].X = x
				expectedXY[i].Y = normDist.Prob(x) * scale
			}
			expected, err := plotter.NewLine(expectedXY)
			if err != nil {
				return "", err
			}
			expected.LineStyle.Color = color.RGBA{R: 50, G: 50, B: 200, A: 255}
			expected.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
			expected.LineStyle.Width = vg.Points(1.5)
			p.Add(expected)
			p.Legend.Add("Normal fit", expected)
		}
	}
	p.Legend.Top = true

	return renderSVG(p)
}

// GenerateLengthPlot draws the record length distribution.
func GenerateLengthPlot(lengths []float64) (string, error) {
	if len(lengths) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Sequence Length Distribution"
	p.X.Label.Text = "Length (bp)"
	p.Y.Label.Text = "Record Count"
	p.X.Tick.Marker = IntegerTicks{}

	// Bin size setup
	binCount := 50
	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		minLen = math.Min(minLen, l)
		maxLen = math.Max(maxLen, l)
	}
	binWidth := (maxLen - minLen + 1) / float64(binCount)
	counts := make([]float64, binCount)
	for _, val := range lengths {
		bin := int((val - minLen) / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		counts[bin]++
	}

	points := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		points[i].X = minLen + binWidth*float64(i) + binWidth/2
		points[i].Y = counts[i]
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Record Count", line)
	p.Legend.Top = true

	return renderSVG(p)
}
