package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the daily price history for one ticker.
type PriceSeries struct {
	Symbol    string
	DailyBars []OHLCV
	FetchedAt time.Time
}

// Fundamentals holds quote-summary data used for universe filtering and
// best-effort enrichment of detected setups.
type Fundamentals struct {
	Symbol       string
	Name         string
	Sector       string
	MarketCap    float64 // dollars
	TrailingPE   float64
	ProfitMargin float64
}
