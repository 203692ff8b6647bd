package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"ChartScout/internal/model"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			universe_size INTEGER,
			candidates    INTEGER,
			matches       INTEGER,
			duration_ms   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON scan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trade_setups (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      INTEGER NOT NULL REFERENCES scan_runs(id),
			ticker      TEXT NOT NULL,
			score       REAL,
			entry       REAL,
			stop        REAL,
			target      REAL,
			rr_ratio    REAL,
			name        TEXT,
			sector      TEXT,
			market_cap_b REAL,
			pe_ratio    REAL,
			chart_path  TEXT,
			ai_analysis TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_setups_run ON trade_setups(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_setups_ticker ON trade_setups(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan stores one run and its setups in a single transaction.
func (r *SQLiteRecorder) RecordScan(res *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO scan_runs (timestamp, universe_size, candidates, matches, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		res.StartedAt.Unix(), res.UniverseSize, res.Candidates, len(res.Setups),
		res.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert scan run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, s := range res.Setups {
		if _, err := tx.Exec(
			`INSERT INTO trade_setups (run_id, ticker, score, entry, stop, target, rr_ratio,
			                           name, sector, market_cap_b, pe_ratio, chart_path, ai_analysis)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, s.Ticker, s.Score, s.Entry, s.Stop, s.Target, s.RRRatio,
			s.Name, s.Sector, s.MarketCapB, s.PERatio, s.ChartPath, s.AIAnalysis,
		); err != nil {
			return fmt.Errorf("insert setup %s: %w", s.Ticker, err)
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
