package generate

import (
	"time"

	"github.com/google/uuid"
)

// Failure records one service that could not be generated. The batch
// continues past failures.
type Failure struct {
	// Service is the catalog service name.
	Service string `json:"service"`

	// Code is the classification code, when known.
	Code string `json:"code,omitempty"`

	// Reason is the failure description.
	Reason string `json:"reason"`
}

// Report tallies one generation run.
type Report struct {
	// RunID uniquely identifies this generation run.
	RunID string `json:"run_id"`

	// Mode is the layout mode used.
	Mode string `json:"mode"`

	// Generated counts successfully rendered leaf documents.
	Generated int `json:"generated"`

	// Indexes counts emitted index documents.
	Indexes int `json:"indexes"`

	// Skipped counts services removed by include/exclude filters.
	Skipped int `json:"skipped"`

	// Failures lists per-service failures.
	Failures []Failure `json:"failures,omitempty"`

	// StartedAt and Duration time the run.
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// newReport creates a report with a fresh run ID.
func newReport(mode string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

// Failed returns the number of failed services.
func (r *Report) Failed() int {
	return len(r.Failures)
}
