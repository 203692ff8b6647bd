package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"ChartScout/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted market-data REST API,
// for deployments where Yahoo Finance is unreachable.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a new fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

func (f *RestFetcher) getJSON(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("rest fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rest: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("rest decode: %w", err)
	}
	return nil
}

// restBar is the expected JSON shape from the bars endpoint.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RestFetcher) FetchUniverseSymbols() ([]string, error) {
	var payload struct {
		Symbols []string `json:"symbols"`
	}
	endpoint := fmt.Sprintf("%s/api/v1/symbols", f.BaseURL)
	if err := f.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Symbols) == 0 {
		return nil, fmt.Errorf("rest: empty symbol list")
	}
	return payload.Symbols, nil
}

func (f *RestFetcher) FetchDailyHistory(symbol string, years int) ([]model.OHLCV, error) {
	days := years * 252
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), days)

	var payload struct {
		Bars []restBar `json:"bars"`
	}
	if err := f.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}

	bars := make([]model.OHLCV, 0, len(payload.Bars))
	for _, b := range payload.Bars {
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *RestFetcher) FetchQuoteSummary(symbol string) (*model.Fundamentals, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", f.BaseURL, url.QueryEscape(symbol))

	var payload struct {
		Name         string  `json:"name"`
		Sector       string  `json:"sector"`
		MarketCap    float64 `json:"market_cap"`
		TrailingPE   float64 `json:"trailing_pe"`
		ProfitMargin float64 `json:"profit_margin"`
	}
	if err := f.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}
	return &model.Fundamentals{
		Symbol:       symbol,
		Name:         payload.Name,
		Sector:       payload.Sector,
		MarketCap:    payload.MarketCap,
		TrailingPE:   payload.TrailingPE,
		ProfitMargin: payload.ProfitMargin,
	}, nil
}
