package collector

import "ChartScout/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchUniverseSymbols returns the raw candidate symbols, in priority order.
	FetchUniverseSymbols() ([]string, error)
	// FetchDailyHistory returns daily bars covering the given number of years.
	FetchDailyHistory(symbol string, years int) ([]model.OHLCV, error)
	// FetchQuoteSummary returns fundamentals for one symbol.
	FetchQuoteSummary(symbol string) (*model.Fundamentals, error)
	Name() string
}
