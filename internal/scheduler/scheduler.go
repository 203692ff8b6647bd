package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"ChartScout/internal/model"
	"ChartScout/internal/presenter"
	"ChartScout/internal/recorder"
	"ChartScout/internal/scanner"
)

// Scheduler runs recurring scans on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *scanner.Pipeline
	Limit    int
	Recorder recorder.Recorder
	Notifier *presenter.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *scanner.Pipeline, limit int, rec recorder.Recorder, tn *presenter.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Limit:    limit,
		Recorder: rec,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] running scheduled scan (limit %d)", s.Limit)

	res, err := s.Pipeline.Run(s.Ctx, s.Limit, logProgress)
	if err != nil {
		log.Printf("[ERROR] scheduled scan: %v", err)
		s.trySend(fmt.Sprintf("❌ Scan failed: %v", err))
		return
	}
	log.Printf("[INFO] scan complete: %d matches of %d candidates in %s",
		len(res.Setups), res.Candidates, res.Duration.Round(time.Second))

	if err := s.Recorder.RecordScan(res); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	s.trySend(presenter.FormatScanReport(res))
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil || !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] telegram notify: %v", err)
	}
}

// logProgress reports coarse progress to the log, every tenth item per stage.
func logProgress(ev model.ProgressEvent) {
	if ev.Current%10 != 0 && ev.Current != ev.Total {
		return
	}
	log.Printf("[INFO] %s: %d/%d (%s)", ev.Stage, ev.Current, ev.Total, ev.Ticker)
}
