package planner

import (
	"context"
	"fmt"
	"time"

	"hireline/internal/scheduling/conflict"
	"hireline/pkg/model"
)

// Planner enumerates free interview slots for a calendar date from a fixed
// daily schedule template.
//
// The interview type is accepted for future per-type calendars, but one
// shared calendar currently applies across all types. This is a known
// simplification, kept deliberately; do not silently change it.
type Planner struct {
	checker    conflict.Checker
	startTimes []string
	slotLength time.Duration
}

func New(checker conflict.Checker, startTimes []string, slotDurationMin int) *Planner {
	return &Planner{
		checker:    checker,
		startTimes: startTimes,
		slotLength: time.Duration(slotDurationMin) * time.Minute,
	}
}

// AvailableSlots returns the template slots on date with no active conflict,
// in template order (ascending by time). Only free slots are included.
func (p *Planner) AvailableSlots(ctx context.Context, date time.Time, interviewType string) ([]model.Slot, error) {
	_ = interviewType // shared calendar across all interview types

	year, month, day := date.Date()

	slots := make([]model.Slot, 0, len(p.startTimes))
	for _, startTime := range p.startTimes {
		clock, err := time.Parse("15:04", startTime)
		if err != nil {
			return nil, fmt.Errorf("invalid slot start time %q in schedule template: %w", startTime, err)
		}

		start := time.Date(year, month, day, clock.Hour(), clock.Minute(), 0, 0, time.UTC)
		interval, err := model.NewInterval(start, p.slotLength)
		if err != nil {
			return nil, err
		}

		conflicts, err := p.checker.Conflicts(ctx, interval)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			continue
		}

		slots = append(slots, model.Slot{
			Time:      startTime,
			StartsAt:  start,
			Available: true,
		})
	}
	return slots, nil
}
