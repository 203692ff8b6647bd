package scanner

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"ChartScout/internal/model"
	"ChartScout/internal/pattern"
)

// UniverseProvider yields the filtered candidate symbols for a scan run,
// along with the number of symbols it examined.
type UniverseProvider interface {
	FilteredUniverse(ctx context.Context, limit int, progress model.ProgressFunc) ([]string, int, error)
}

// MarketData fetches history and quote summaries for single symbols.
type MarketData interface {
	FetchDailyHistory(symbol string, years int) ([]model.OHLCV, error)
	FetchQuoteSummary(symbol string) (*model.Fundamentals, error)
}

// Detector reports whether one ticker's series shows the pattern.
type Detector interface {
	FindPattern(series *model.PriceSeries) (bool, *model.TradeSetup)
}

// Renderer draws the chart for one detected setup.
type Renderer interface {
	Render(series *model.PriceSeries, setup *model.TradeSetup) (string, error)
}

// Verifier provides advisory AI confirmation for a rendered chart.
type Verifier interface {
	Enabled() bool
	Analyze(ctx context.Context, chartPath, prompt string) string
}

// HistoryYears is the lookback window fetched per ticker.
const HistoryYears = 2

// Pipeline drives the end-to-end scan: universe selection, then strictly
// sequential per-ticker processing, then ranking. Each ticker is processed in
// isolation: its failures are logged and dropped without aborting the run.
type Pipeline struct {
	Universe UniverseProvider
	Market   MarketData
	Detector Detector
	Renderer Renderer
	Verifier Verifier
	Prompt   string
}

// Run executes one scan over at most limit tickers. Only a universe fetch
// failure (or cancellation) terminates the run; an empty universe is a normal
// outcome producing an empty result.
func (p *Pipeline) Run(ctx context.Context, limit int, progress model.ProgressFunc) (*model.ScanResult, error) {
	if progress == nil {
		progress = func(model.ProgressEvent) {}
	}
	started := time.Now()

	symbols, examined, err := p.Universe.FilteredUniverse(ctx, limit, progress)
	if err != nil {
		return nil, fmt.Errorf("fetch universe: %w", err)
	}

	res := &model.ScanResult{
		UniverseSize: examined,
		Candidates:   len(symbols),
		StartedAt:    started,
	}
	if len(symbols) == 0 {
		res.Duration = time.Since(started)
		return res, nil
	}

	for i, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress(model.ProgressEvent{
			Stage:   model.StageAnalysis,
			Current: i + 1,
			Total:   len(symbols),
			Ticker:  sym,
		})

		setup, err := p.processTicker(ctx, sym)
		if err != nil {
			log.Printf("[WARN] scan %s: %v", sym, err)
			continue
		}
		if setup == nil {
			continue
		}
		res.Setups = append(res.Setups, *setup)
	}

	rankSetups(res.Setups)
	res.Duration = time.Since(started)
	return res, nil
}

// processTicker runs the per-ticker stages. A nil setup with nil error means
// the ticker was skipped (short history or no pattern); an error drops it.
func (p *Pipeline) processTicker(ctx context.Context, sym string) (*model.TradeSetup, error) {
	bars, err := p.Market.FetchDailyHistory(sym, HistoryYears)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if len(bars) < pattern.MinBars {
		return nil, nil
	}
	series := &model.PriceSeries{Symbol: sym, DailyBars: bars, FetchedAt: time.Now()}

	found, setup := p.Detector.FindPattern(series)
	if !found {
		return nil, nil
	}
	setup.Ticker = sym

	// Rendering failure keeps the setup, just without an image.
	if path, err := p.Renderer.Render(series, setup); err != nil {
		log.Printf("[WARN] render chart for %s: %v", sym, err)
	} else {
		setup.ChartPath = path
	}

	// Best-effort enrichment; never drops the ticker.
	if f, err := p.Market.FetchQuoteSummary(sym); err != nil {
		log.Printf("[WARN] enrich %s: %v", sym, err)
	} else {
		setup.Name = f.Name
		setup.Sector = f.Sector
		setup.MarketCapB = round1(f.MarketCap / 1e9)
		setup.PERatio = f.TrailingPE
		setup.Enriched = true
	}

	if p.Verifier != nil && p.Verifier.Enabled() && setup.ChartPath != "" {
		setup.AIAnalysis = p.Verifier.Analyze(ctx, setup.ChartPath, p.Prompt)
	}
	return setup, nil
}

// rankSetups sorts descending by score when every setup carries one;
// otherwise processing order is preserved.
func rankSetups(setups []model.TradeSetup) {
	for _, s := range setups {
		if s.Score == 0 {
			return
		}
	}
	sort.SliceStable(setups, func(i, j int) bool {
		return setups[i].Score > setups[j].Score
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
