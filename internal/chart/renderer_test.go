package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ChartScout/internal/model"
)

func syntheticSeries(symbol string, n int) *model.PriceSeries {
	bars := make([]model.OHLCV, n)
	for i := range bars {
		p := 90 + float64(i%20)
		bars[i] = model.OHLCV{
			Time:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   p,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: 1e6,
		}
	}
	return &model.PriceSeries{Symbol: symbol, DailyBars: bars}
}

func testSetup() *model.TradeSetup {
	return &model.TradeSetup{Entry: 105, Stop: 88, Target: 125}
}

func TestRender_WritesPNGFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	path, err := r.Render(syntheticSeries("TEST", 120), testSetup())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if path != filepath.Join(dir, "TEST.png") {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("chart file is empty")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("chart file is not a PNG")
	}
}

func TestRender_ShortSeriesWithoutSMA(t *testing.T) {
	// Under 50 bars there is no SMA overlay, but the chart must still render.
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	path, err := r.Render(syntheticSeries("SHORT", 20), testSetup())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestRender_EmptySeriesFails(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if _, err := r.Render(&model.PriceSeries{Symbol: "EMPTY"}, testSetup()); err == nil {
		t.Fatal("expected an error for an empty series")
	}
}
