package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SupportedLimits is the enumerated set of scan sizes. A limit above the data
// source's symbol count examines the whole list; the result reports how many
// symbols were actually examined.
var SupportedLimits = []int{10, 25, 50, 100, 500}

// Config holds all application configuration.
type Config struct {
	Scan struct {
		Limit        int     `yaml:"limit"`
		MinMarketCap float64 `yaml:"min_market_cap_b"` // billions
		ChartDir     string  `yaml:"chart_dir"`
	} `yaml:"scan"`
	AI struct {
		APIKey string   `yaml:"api_key"`
		Models []string `yaml:"models"`
	} `yaml:"ai"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Mode     string `yaml:"mode"` // "once" or "daemon"
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCAN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Limit = n
		}
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Scan.ChartDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SCAN_MODE"); v != "" {
		cfg.Schedule.Mode = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Scan.Limit == 0 {
		cfg.Scan.Limit = 25
	}
	if cfg.Scan.MinMarketCap == 0 {
		cfg.Scan.MinMarketCap = 5 // $5B
	}
	if cfg.Scan.ChartDir == "" {
		cfg.Scan.ChartDir = "data/charts"
	}
	if cfg.Schedule.Mode == "" {
		cfg.Schedule.Mode = "once"
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays 13:30 UTC, shortly after the US market open.
		cfg.Schedule.ScanCron = "0 30 13 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	valid := false
	for _, l := range SupportedLimits {
		if c.Scan.Limit == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("scan.limit must be one of %v, got %d", SupportedLimits, c.Scan.Limit)
	}
	if c.Scan.MinMarketCap <= 0 {
		return fmt.Errorf("scan.min_market_cap_b must be positive")
	}
	if c.Schedule.Mode != "once" && c.Schedule.Mode != "daemon" {
		return fmt.Errorf("schedule.mode must be \"once\" or \"daemon\", got %q", c.Schedule.Mode)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
