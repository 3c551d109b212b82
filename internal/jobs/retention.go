package jobs

import (
	"context"
	"fmt"
	"log"
	"time"
)

// MatchLogPruner defines the slice of the match-log repository the retention
// worker needs.
type MatchLogPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionWorker prunes match logs older than the configured retention
// window. It runs as a JobProcessor under the polling Worker.
type RetentionWorker struct {
	pruner    MatchLogPruner
	retention time.Duration
}

// NewRetentionWorker creates a RetentionWorker keeping logs for the given
// number of days.
func NewRetentionWorker(pruner MatchLogPruner, retentionDays int) *RetentionWorker {
	return &RetentionWorker{
		pruner:    pruner,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// ProcessJobs deletes one batch of expired match logs.
func (w *RetentionWorker) ProcessJobs(ctx context.Context) error {
	if w.retention <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.pruner.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune match logs: %w", err)
	}

	if deleted > 0 {
		log.Printf("Pruned %d match logs older than %s", deleted, cutoff.Format(time.RFC3339))
	}
	return nil
}
