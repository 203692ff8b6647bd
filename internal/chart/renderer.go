package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ChartScout/internal/model"
)

// Renderer draws setup charts as PNG files under Dir.
type Renderer struct {
	Dir string
}

// NewRenderer creates a Renderer, making sure the output directory exists.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	return &Renderer{Dir: dir}, nil
}

// Render draws the closing-price series with a 50-day SMA and the setup's
// entry/stop/target levels, and returns the written file path.
func (r *Renderer) Render(series *model.PriceSeries, setup *model.TradeSetup) (string, error) {
	bars := series.DailyBars
	if len(bars) == 0 {
		return "", fmt.Errorf("no bars to render for %s", series.Symbol)
	}

	times := make([]time.Time, len(bars))
	closes := make([]float64, len(bars))
	for i, b := range bars {
		times[i] = b.Time
		closes[i] = b.Close
	}

	plots := []chart.Series{
		chart.TimeSeries{
			Name:    "Close",
			XValues: times,
			YValues: closes,
		},
	}
	if smaVals := sma50(closes); smaVals != nil {
		plots = append(plots, chart.TimeSeries{
			Name:    "SMA50",
			XValues: times[len(times)-len(smaVals):],
			YValues: smaVals,
			Style: chart.Style{
				StrokeColor:     chart.ColorBlue,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}
	plots = append(plots,
		levelSeries("Entry", setup.Entry, times, chart.ColorGreen),
		levelSeries("Stop", setup.Stop, times, chart.ColorRed),
		levelSeries("Target", setup.Target, times, drawing.Color{R: 128, G: 0, B: 128, A: 255}),
	)

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Cup & Handle Candidate", series.Symbol),
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Price",
		},
		Series: plots,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	path := filepath.Join(r.Dir, fmt.Sprintf("%s.png", series.Symbol))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}

// levelSeries draws a horizontal price level across the full time range.
func levelSeries(name string, level float64, times []time.Time, color drawing.Color) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    name,
		XValues: []time.Time{times[0], times[len(times)-1]},
		YValues: []float64{level, level},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeDashArray: []float64{3.0, 3.0},
		},
	}
}

func sma50(closes []float64) []float64 {
	const period = 50
	if len(closes) < period {
		return nil
	}
	out := make([]float64, 0, len(closes)-period+1)
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/period)
		}
	}
	return out
}
