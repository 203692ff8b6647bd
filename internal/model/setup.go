package model

import "time"

// TradeSetup is a detected cup-and-handle candidate with suggested trade levels.
// Enrichment fields are best-effort: Enriched reports whether the quote-summary
// fetch succeeded, so absence is observable rather than a zero-value guess.
type TradeSetup struct {
	Ticker  string
	Score   float64 // win-probability score, 0-100, higher is better
	Entry   float64
	Stop    float64
	Target  float64
	RRRatio float64

	Name       string
	Sector     string
	MarketCapB float64 // billions
	PERatio    float64
	Enriched   bool

	ChartPath  string // empty if rendering failed
	AIAnalysis string // empty if AI verification was disabled or never ran
}

// ScanResult is the final outcome of one scan run, sorted descending by score
// whenever every setup carries one.
type ScanResult struct {
	Setups       []TradeSetup
	UniverseSize int // symbols examined by the fundamental filter
	Candidates   int // symbols that passed the filter
	StartedAt    time.Time
	Duration     time.Duration
}
