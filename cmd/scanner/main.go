package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ChartScout/internal/ai"
	"ChartScout/internal/chart"
	"ChartScout/internal/collector"
	"ChartScout/internal/config"
	"ChartScout/internal/model"
	"ChartScout/internal/pattern"
	"ChartScout/internal/presenter"
	"ChartScout/internal/recorder"
	"ChartScout/internal/scanner"
	"ChartScout/internal/scheduler"
	"ChartScout/internal/universe"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChartScout starting...")

	// .env is optional; real config comes from the YAML file and environment.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init universe provider
	uni := universe.NewProvider(fetcher)
	uni.MinMarketCap = cfg.Scan.MinMarketCap * 1e9

	// Init chart renderer
	renderer, err := chart.NewRenderer(cfg.Scan.ChartDir)
	if err != nil {
		log.Fatalf("[FATAL] init chart renderer: %v", err)
	}

	// Init AI resolver; an empty key disables verification entirely.
	resolver := ai.NewResolver(ai.NewGeminiClient(cfg.AI.APIKey, cfg.Proxy), cfg.AI.Models)
	if resolver.Enabled() {
		log.Printf("[INFO] AI verification enabled (%d candidate models)", len(resolver.Models))
	} else {
		log.Println("[INFO] AI verification disabled: no API key")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	pipeline := &scanner.Pipeline{
		Universe: uni,
		Market:   fetcher,
		Detector: pattern.NewDetector(),
		Renderer: renderer,
		Verifier: resolver,
		Prompt:   ai.DefaultPrompt,
	}

	tn := presenter.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Schedule.Mode == "once" {
		runOnce(ctx, cancel, pipeline, cfg.Scan.Limit, rec, tn)
		return
	}

	// Daemon mode: recurring scans on a cron schedule.
	sched := scheduler.NewScheduler(ctx, pipeline, cfg.Scan.Limit, rec, tn)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] ChartScout is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ChartScout stopped")
}

// runOnce executes a single interactive scan and prints the ranked results.
func runOnce(ctx context.Context, cancel context.CancelFunc, pipeline *scanner.Pipeline, limit int, rec recorder.Recorder, tn *presenter.TelegramNotifier) {
	// Ctrl+C cancels between tickers.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("[INFO] cancelling scan...")
		cancel()
	}()

	log.Printf("[INFO] scanning top %d stocks...", limit)
	res, err := pipeline.Run(ctx, limit, func(ev model.ProgressEvent) {
		log.Printf("[INFO] %s: %s (%d/%d)", ev.Stage, ev.Ticker, ev.Current, ev.Total)
	})
	if err != nil {
		log.Fatalf("[FATAL] scan: %v", err)
	}

	presenter.WriteResultTable(os.Stdout, res)
	for i := range res.Setups {
		presenter.WriteSetupDetail(os.Stdout, &res.Setups[i])
	}

	if err := rec.RecordScan(res); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	if tn.Enabled() {
		if err := tn.SendWithRetry(ctx, presenter.FormatScanReport(res), 3); err != nil {
			log.Printf("[ERROR] telegram notify: %v", err)
		}
	}
}
