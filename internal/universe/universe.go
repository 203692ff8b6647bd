package universe

import (
	"context"
	"fmt"
	"log"

	"ChartScout/internal/collector"
	"ChartScout/internal/model"
)

// DefaultMinMarketCap is the quality cutoff: $5B.
const DefaultMinMarketCap = 5e9

// Provider filters the raw candidate universe down to high-quality symbols:
// market cap above the cutoff, profitable, positive trailing P/E.
type Provider struct {
	Fetcher      collector.Fetcher
	MinMarketCap float64
}

// NewProvider creates a Provider with the default quality cutoff.
func NewProvider(fetcher collector.Fetcher) *Provider {
	return &Provider{Fetcher: fetcher, MinMarketCap: DefaultMinMarketCap}
}

// FilteredUniverse examines up to limit candidate symbols and returns, in
// order, those passing the quality gates, along with the number of symbols
// actually examined. A progress event is emitted per symbol examined. Failure
// to fetch the candidate list is fatal; failure to fetch one symbol's
// fundamentals only skips that symbol.
func (p *Provider) FilteredUniverse(ctx context.Context, limit int, progress model.ProgressFunc) ([]string, int, error) {
	if progress == nil {
		progress = func(model.ProgressEvent) {}
	}

	symbols, err := p.Fetcher.FetchUniverseSymbols()
	if err != nil {
		return nil, 0, fmt.Errorf("fetch universe symbols: %w", err)
	}
	if limit > 0 && len(symbols) > limit {
		symbols = symbols[:limit]
	} else if limit > len(symbols) {
		log.Printf("[WARN] data source lists only %d symbols, requested %d", len(symbols), limit)
	}

	var passed []string
	for i, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		progress(model.ProgressEvent{
			Stage:   model.StageFundamentals,
			Current: i + 1,
			Total:   len(symbols),
			Ticker:  sym,
		})

		f, err := p.Fetcher.FetchQuoteSummary(sym)
		if err != nil {
			log.Printf("[WARN] fundamentals for %s: %v", sym, err)
			continue
		}
		if p.passes(f) {
			passed = append(passed, sym)
		}
	}
	return passed, len(symbols), nil
}

func (p *Provider) passes(f *model.Fundamentals) bool {
	minCap := p.MinMarketCap
	if minCap == 0 {
		minCap = DefaultMinMarketCap
	}
	return f.MarketCap >= minCap && f.ProfitMargin > 0 && f.TrailingPE > 0
}
