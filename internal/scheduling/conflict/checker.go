package conflict

import (
	"context"

	"hireline/internal/scheduling/store"
	"hireline/pkg/model"
)

// Checker reports every active interview colliding with a candidate
// interval. An empty result means the interval is free. Implementations are
// pure predicates over the store's current content, so an interval-indexed
// variant can replace ScanChecker without touching callers.
type Checker interface {
	Conflicts(ctx context.Context, interval model.Interval) ([]model.Conflict, error)
}

// ScanChecker walks the whole store linearly. Fine for a single-organization
// interview calendar; swap in an indexed implementation if volume grows.
type ScanChecker struct {
	store store.InterviewStore
}

func NewScanChecker(s store.InterviewStore) *ScanChecker {
	return &ScanChecker{store: s}
}

func (c *ScanChecker) Conflicts(ctx context.Context, interval model.Interval) ([]model.Conflict, error) {
	interviews, err := c.store.All(ctx)
	if err != nil {
		return nil, err
	}

	var conflicts []model.Conflict
	for _, iv := range interviews {
		if !iv.Active() {
			continue
		}
		if iv.Interval.Overlaps(interval) {
			conflicts = append(conflicts, model.Conflict{
				InterviewID:   iv.ID,
				CandidateName: iv.CandidateName,
				StartTime:     iv.Interval.Start,
			})
		}
	}
	return conflicts, nil
}
