package model

// ScanStage identifies which pipeline stage a progress event belongs to.
type ScanStage string

const (
	StageFundamentals ScanStage = "fundamentals"
	StageAnalysis     ScanStage = "analysis"
)

// ProgressEvent reports per-item progress within a scan stage. Events are
// emitted in strictly increasing Current order, one stage at a time.
type ProgressEvent struct {
	Stage   ScanStage
	Current int
	Total   int
	Ticker  string
}

// ProgressFunc receives progress events during a scan run.
type ProgressFunc func(ProgressEvent)
