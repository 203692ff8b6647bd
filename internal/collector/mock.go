package collector

import (
	"fmt"
	"time"

	"ChartScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Symbols      []string
	History      map[string][]model.OHLCV
	Fundamentals map[string]*model.Fundamentals

	SymbolsErr error
	HistoryErr map[string]error
	SummaryErr map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchUniverseSymbols() ([]string, error) {
	if m.SymbolsErr != nil {
		return nil, m.SymbolsErr
	}
	return m.Symbols, nil
}

func (m *MockFetcher) FetchDailyHistory(symbol string, years int) ([]model.OHLCV, error) {
	if err := m.HistoryErr[symbol]; err != nil {
		return nil, err
	}
	if bars, ok := m.History[symbol]; ok {
		return bars, nil
	}
	return GenerateMockBars(100, years*252), nil
}

func (m *MockFetcher) FetchQuoteSummary(symbol string) (*model.Fundamentals, error) {
	if err := m.SummaryErr[symbol]; err != nil {
		return nil, err
	}
	if f, ok := m.Fundamentals[symbol]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("mock: no fundamentals for %s", symbol)
}

// GenerateMockBars produces a gently trending synthetic series.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
