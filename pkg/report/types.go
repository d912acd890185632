// Package report stores the outcome of a plan run as JSON and JUnit XML.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
)

// Status represents plan/swipe execution status.
type Status string

// Status values
const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Report is the top-level document written to report.json.
type Report struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Status      Status    `json:"status"`
	Summary     Summary   `json:"summary"`
	DurationMs  int64     `json:"durationMs"`
	Plans       []Plan    `json:"plans"`
}

// Summary counts plans by status.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Plan is the result of one plan file.
type Plan struct {
	Name       string  `json:"name"`
	SourceFile string  `json:"sourceFile"`
	Status     Status  `json:"status"`
	DurationMs int64   `json:"durationMs"`
	Swipes     []Swipe `json:"swipes"`
}

// Swipe is the result of one swipe inside a plan.
type Swipe struct {
	Index       int            `json:"index"`
	Description string         `json:"description"`
	Status      Status         `json:"status"`
	Gesture     *swipe.Gesture `json:"gesture,omitempty"`
	Dispatched  bool           `json:"dispatched"`
	Error       string         `json:"error,omitempty"`
}

// New assembles a report from plan results.
func New(plans []Plan, duration time.Duration) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		DurationMs:  duration.Milliseconds(),
		Plans:       plans,
		Status:      StatusPassed,
	}

	for _, p := range plans {
		r.Summary.Total++
		switch p.Status {
		case StatusPassed:
			r.Summary.Passed++
		case StatusFailed:
			r.Summary.Failed++
		}
	}
	if r.Summary.Failed > 0 {
		r.Status = StatusFailed
	}
	return r
}

// FirstFailure returns the first failed swipe of p, or nil.
func (p *Plan) FirstFailure() *Swipe {
	for i := range p.Swipes {
		if p.Swipes[i].Status == StatusFailed {
			return &p.Swipes[i]
		}
	}
	return nil
}
