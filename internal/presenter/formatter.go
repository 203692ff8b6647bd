package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"ChartScout/internal/model"
)

// WriteResultTable writes the ranked result set as a column-aligned table.
func WriteResultTable(w io.Writer, res *model.ScanResult) {
	if res.Candidates == 0 {
		fmt.Fprintln(w, "No stocks passed the fundamental filter.")
		return
	}
	if len(res.Setups) == 0 {
		fmt.Fprintln(w, "No Cup and Handle patterns found in this batch.")
		return
	}

	fmt.Fprintf(w, "Found %d matches (of %d candidates):\n\n", len(res.Setups), res.Candidates)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tSCORE\tNAME\tSECTOR\tENTRY\tSTOP\tTARGET\tR/R")
	for _, s := range res.Setups {
		name, sector := s.Name, s.Sector
		if !s.Enriched {
			name, sector = "N/A", "N/A"
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%s\t%s\t%.2f\t%.2f\t%.2f\t1:%.1f\n",
			s.Ticker, s.Score, name, sector, s.Entry, s.Stop, s.Target, s.RRRatio)
	}
	tw.Flush()
}

// WriteSetupDetail writes the per-result detail block for one setup.
func WriteSetupDetail(w io.Writer, s *model.TradeSetup) {
	fmt.Fprintf(w, "\n%s | score %.0f/100\n", s.Ticker, s.Score)
	if s.Enriched {
		fmt.Fprintf(w, "  %s | %s | market cap $%.1fB | P/E %.1f\n", s.Name, s.Sector, s.MarketCapB, s.PERatio)
	}
	fmt.Fprintf(w, "  entry %.2f | stop %.2f | target %.2f | risk/reward 1:%.1f\n",
		s.Entry, s.Stop, s.Target, s.RRRatio)
	if s.ChartPath != "" {
		fmt.Fprintf(w, "  chart: %s\n", s.ChartPath)
	} else {
		fmt.Fprintln(w, "  chart image not available")
	}
	if s.AIAnalysis != "" {
		fmt.Fprintf(w, "  AI verification: %s\n", s.AIAnalysis)
	}
}

// FormatScanReport formats a scan result into a Telegram message.
func FormatScanReport(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>Cup &amp; Handle Scan</b> | %s\n\n", res.StartedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Candidates screened: %d (took %s)\n\n", res.Candidates, res.Duration.Round(time.Second)))

	if res.Candidates == 0 {
		b.WriteString("No stocks passed the fundamental filter.\n")
		return b.String()
	}
	if len(res.Setups) == 0 {
		b.WriteString("No matches this run.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("🎯 <b>%d matches:</b>\n", len(res.Setups)))
	for _, s := range res.Setups {
		b.WriteString(fmt.Sprintf("  %s (%.0f/100): entry %.2f, stop %.2f, target %.2f\n",
			s.Ticker, s.Score, s.Entry, s.Stop, s.Target))
		if s.AIAnalysis != "" {
			b.WriteString(fmt.Sprintf("    🤖 %s\n", s.AIAnalysis))
		}
	}
	return b.String()
}
