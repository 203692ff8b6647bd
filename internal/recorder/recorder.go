package recorder

import "ChartScout/internal/model"

// Recorder persists scan history for later review.
type Recorder interface {
	RecordScan(res *model.ScanResult) error
	Close() error
}
