// Package progress provides a rate-limited progress reporter for long
// simulation runs, grounded on the teacher's scryfall client rate limiter.
package progress

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/mtgsim/manasim/internal/logger"
)

// Reporter throttles progress log lines to at most one per interval,
// regardless of how often Report is called, so a 100k-trial run doesn't
// flood stdout with one line per trial.
type Reporter struct {
	limiter *rate.Limiter
}

// NewReporter builds a Reporter that allows at most one report per
// interval (burst of 1, matching the teacher's "N req/sec" limiter shape).
func NewReporter(interval time.Duration) *Reporter {
	return &Reporter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Report logs a progress line if the rate limiter currently has a token
// available; otherwise it is a silent no-op. The final call (completed ==
// total) always logs, so a run's completion is never swallowed.
func (r *Reporter) Report(completed, total int) {
	if completed >= total {
		logger.LogMeta("progress: %d/%d trials complete", completed, total)
		return
	}
	if r.limiter.Allow() {
		logger.LogMeta("progress: %d/%d trials complete", completed, total)
	}
}

// Func adapts Report to simulation.ProgressFunc's signature.
func (r *Reporter) Func() func(completed, total int) {
	return r.Report
}
