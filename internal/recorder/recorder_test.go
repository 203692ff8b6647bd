package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"ChartScout/internal/model"
)

func TestRecordScan_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "scans.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder() error = %v", err)
	}
	defer r.Close()

	res := &model.ScanResult{
		UniverseSize: 25,
		Candidates:   9,
		StartedAt:    time.Date(2026, 8, 28, 13, 30, 0, 0, time.UTC),
		Duration:     42 * time.Second,
		Setups: []model.TradeSetup{
			{
				Ticker: "AAPL", Score: 85, Entry: 231.46, Stop: 224.11, Target: 262.30,
				RRRatio: 4.2, Name: "Apple Inc.", Sector: "Technology",
				MarketCapB: 3400.5, PERatio: 35.1, Enriched: true,
				ChartPath: "data/charts/AAPL.png", AIAnalysis: "Score: 8",
			},
			{Ticker: "MSFT", Score: 72, Entry: 415.20, Stop: 401.90, Target: 460.00, RRRatio: 3.4},
		},
	}
	if err := r.RecordScan(res); err != nil {
		t.Fatalf("RecordScan() error = %v", err)
	}

	var runs, matches, universe int
	err = r.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(matches), 0), COALESCE(SUM(universe_size), 0) FROM scan_runs",
	).Scan(&runs, &matches, &universe)
	if err != nil {
		t.Fatalf("query scan_runs: %v", err)
	}
	if runs != 1 || matches != 2 || universe != 25 {
		t.Errorf("scan_runs: runs=%d matches=%d universe=%d, want 1/2/25", runs, matches, universe)
	}

	var ticker, analysis string
	var score float64
	err = r.db.QueryRow(
		"SELECT ticker, score, ai_analysis FROM trade_setups ORDER BY score DESC LIMIT 1",
	).Scan(&ticker, &score, &analysis)
	if err != nil {
		t.Fatalf("query trade_setups: %v", err)
	}
	if ticker != "AAPL" || score != 85 || analysis != "Score: 8" {
		t.Errorf("top setup: %s/%.0f/%q, want AAPL/85/\"Score: 8\"", ticker, score, analysis)
	}
}

func TestRecordScan_EmptyRun(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "scans.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder() error = %v", err)
	}
	defer r.Close()

	res := &model.ScanResult{UniverseSize: 10, StartedAt: time.Now()}
	if err := r.RecordScan(res); err != nil {
		t.Fatalf("RecordScan() error = %v", err)
	}

	var runs, setups int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scan_runs").Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trade_setups").Scan(&setups); err != nil {
		t.Fatal(err)
	}
	if runs != 1 || setups != 0 {
		t.Errorf("expected one run and zero setups, got %d/%d", runs, setups)
	}
}
