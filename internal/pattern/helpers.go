package pattern

import (
	"errors"

	"ChartScout/internal/model"
)

// sma computes the simple moving average of the trailing period values.
func sma(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// windowHigh returns the index and value of the highest high in bars[from:to).
// Ties resolve to the latest index.
func windowHigh(bars []model.OHLCV, from, to int) (int, float64) {
	idx, high := -1, 0.0
	for i := from; i < to; i++ {
		if idx == -1 || bars[i].High >= high {
			idx, high = i, bars[i].High
		}
	}
	return idx, high
}

// windowLow returns the index and value of the lowest low in bars[from:to).
func windowLow(bars []model.OHLCV, from, to int) (int, float64) {
	idx, low := -1, 0.0
	for i := from; i < to; i++ {
		if idx == -1 || bars[i].Low < low {
			idx, low = i, bars[i].Low
		}
	}
	return idx, low
}

func avgVolume(bars []model.OHLCV, from, to int) float64 {
	if to <= from {
		return 0
	}
	sum := 0.0
	for i := from; i < to; i++ {
		sum += bars[i].Volume
	}
	return sum / float64(to-from)
}
