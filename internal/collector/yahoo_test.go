package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newChartServer(t *testing.T, payload string) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f
}

func TestFetchDailyHistory_TruncatedQuoteArrays(t *testing.T) {
	// Three timestamps but only two entries per quote array.
	payload := `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],` +
		`"indicators":{"quote":[{"open":[10,11],"high":[10.5,11.5],"low":[9.5,10.5],` +
		`"close":[10.2,11.2],"volume":[1000,1100]}]}}],"error":null}}`
	f := newChartServer(t, payload)

	bars, err := f.FetchDailyHistory("TEST", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 10.2 || bars[1].Close != 11.2 {
		t.Errorf("unexpected closes: %.2f, %.2f", bars[0].Close, bars[1].Close)
	}
}

func TestFetchDailyHistory_SkipsNullBars(t *testing.T) {
	// Middle bar is all nulls (holiday), so only two bars survive.
	payload := `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],` +
		`"indicators":{"quote":[{"open":[10,null,12],"high":[10.5,null,12.5],` +
		`"low":[9.5,null,11.5],"close":[10.2,null,12.2],"volume":[1000,null,1200]}]}}],` +
		`"error":null}}`
	f := newChartServer(t, payload)

	bars, err := f.FetchDailyHistory("TEST", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected null bar to be skipped, got %d bars", len(bars))
	}
	if bars[1].Close != 12.2 {
		t.Errorf("expected last close 12.2, got %.2f", bars[1].Close)
	}
}

func TestFetchDailyHistory_APIError(t *testing.T) {
	payload := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`
	f := newChartServer(t, payload)

	if _, err := f.FetchDailyHistory("NOPE", 2); err == nil {
		t.Fatal("expected an error for an API error payload")
	}
}
