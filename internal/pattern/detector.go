package pattern

import (
	"math"

	"ChartScout/internal/model"
)

// MinBars is the minimum daily history required for detection.
const MinBars = 200

// Geometry constraints. All depths are fractions of the relevant high.
const (
	rimSearchBars = 90 // right rim must sit within this many bars of the end
	handleMinLen  = 5
	handleMaxLen  = 25
	cupMaxLen     = 220
	cupMinLen     = 30

	rimTolerance   = 0.95 // left rim must reach 95% of the right rim high
	cupMinDepth    = 0.12
	cupMaxDepth    = 0.50
	handleMaxDepth = 0.12
	handleMaxPoke  = 1.02 // handle may poke at most 2% above the rim
)

// Detector finds cup-and-handle formations where the handle is still forming.
type Detector struct{}

// NewDetector creates a Detector.
func NewDetector() *Detector { return &Detector{} }

// FindPattern reports whether the series shows a cup with a forming handle
// and, if so, returns the suggested trade levels and a 0-100 quality score.
// The ticker symbol is left for the caller to attach.
func (d *Detector) FindPattern(series *model.PriceSeries) (bool, *model.TradeSetup) {
	bars := series.DailyBars
	n := len(bars)
	if n < MinBars {
		return false, nil
	}

	// Right rim: the recovery high, excluding the most recent bars that form
	// the candidate handle.
	r, rimHigh := windowHigh(bars, n-rimSearchBars, n-handleMinLen)
	handleLen := n - 1 - r
	if handleLen < handleMinLen || handleLen > handleMaxLen {
		return false, nil
	}

	// Left rim: the latest prior bar trading within tolerance of the rim.
	l := -1
	for i := r - cupMinLen; i >= r-cupMaxLen && i >= 0; i-- {
		if bars[i].High >= rimHigh*rimTolerance {
			l = i
			break
		}
	}
	if l < 0 {
		return false, nil
	}

	// Cup body: depth and bottom symmetry.
	m, cupLow := windowLow(bars, l, r+1)
	depth := (rimHigh - cupLow) / rimHigh
	if depth < cupMinDepth || depth > cupMaxDepth {
		return false, nil
	}
	bottomPos := float64(m-l) / float64(r-l)
	if bottomPos < 0.25 || bottomPos > 0.75 {
		return false, nil
	}

	// Handle: shallow drift in the upper half of the cup, not broken out.
	_, handleHigh := windowHigh(bars, r+1, n)
	_, handleLow := windowLow(bars, r+1, n)
	if handleHigh > rimHigh*handleMaxPoke {
		return false, nil
	}
	handleDepth := (handleHigh - handleLow) / handleHigh
	if handleDepth >= handleMaxDepth {
		return false, nil
	}
	if handleLow < cupLow+0.5*(rimHigh-cupLow) {
		return false, nil
	}

	entry := handleHigh * 1.002
	stop := handleLow * 0.995
	target := entry + (rimHigh - cupLow)
	if entry <= stop {
		return false, nil
	}
	rr := (target - entry) / (entry - stop)

	setup := &model.TradeSetup{
		Score:   d.score(bars, bottomPos, handleDepth, l, r, n),
		Entry:   round2(entry),
		Stop:    round2(stop),
		Target:  round2(target),
		RRRatio: round2(rr),
	}
	return true, setup
}

// score weighs cup symmetry, handle quality, volume contraction and trend
// posture into a 0-100 win-probability estimate.
func (d *Detector) score(bars []model.OHLCV, bottomPos, handleDepth float64, l, r, n int) float64 {
	score := 50.0

	switch {
	case bottomPos >= 0.4 && bottomPos <= 0.6:
		score += 15
	case bottomPos >= 0.3 && bottomPos <= 0.7:
		score += 7
	}

	if handleDepth < 0.08 {
		score += 15
	}

	cupVol := avgVolume(bars, l, r+1)
	handleVol := avgVolume(bars, r+1, n)
	switch {
	case cupVol > 0 && handleVol < cupVol*0.85:
		score += 10
	case cupVol > 0 && handleVol < cupVol:
		score += 5
	}

	closes := extractCloses(bars)
	if ma, err := sma(closes, MinBars); err == nil && closes[n-1] > ma {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
