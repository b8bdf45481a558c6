package conflict

import (
	"context"
	"testing"
	"time"

	"hireline/internal/scheduling/store"
	"hireline/pkg/model"
)

func seedInterview(t *testing.T, s *store.MemoryStore, name string, start time.Time, minutes int) *model.Interview {
	t.Helper()
	ctx := context.Background()

	iv := &model.Interview{
		ID:             s.NextID(ctx),
		CandidateName:  name,
		CandidateEmail: name + "@example.com",
		InterviewType:  "Technical",
		Interval:       model.Interval{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)},
		Status:         model.StatusScheduled,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Append(ctx, iv); err != nil {
		t.Fatalf("failed to seed interview: %v", err)
	}
	return iv
}

func TestScanChecker_EmptyStoreHasNoConflicts(t *testing.T) {
	s := store.NewMemoryStore()
	checker := NewScanChecker(s)
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	conflicts, err := checker.Conflicts(context.Background(), model.Interval{Start: start, End: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("expected no conflicts, got %d", len(conflicts))
	}
}

func TestScanChecker_Conflicts(t *testing.T) {
	s := store.NewMemoryStore()
	checker := NewScanChecker(s)
	nine := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	alice := seedInterview(t, s, "Alice", nine, 60)

	tests := []struct {
		name      string
		start     time.Time
		minutes   int
		conflicts int
	}{
		{name: "identical interval conflicts", start: nine, minutes: 60, conflicts: 1},
		{name: "half-hour overlap conflicts", start: nine.Add(30 * time.Minute), minutes: 60, conflicts: 1},
		{name: "touching end boundary is free", start: nine.Add(time.Hour), minutes: 60, conflicts: 0},
		{name: "touching start boundary is free", start: nine.Add(-time.Hour), minutes: 60, conflicts: 0},
		{name: "disjoint slot is free", start: nine.Add(4 * time.Hour), minutes: 60, conflicts: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := model.Interval{Start: tt.start, End: tt.start.Add(time.Duration(tt.minutes) * time.Minute)}
			conflicts, err := checker.Conflicts(context.Background(), interval)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(conflicts) != tt.conflicts {
				t.Fatalf("expected %d conflicts, got %d", tt.conflicts, len(conflicts))
			}
			if tt.conflicts > 0 {
				if conflicts[0].CandidateName != "Alice" {
					t.Errorf("expected conflict with Alice, got %s", conflicts[0].CandidateName)
				}
				if !conflicts[0].StartTime.Equal(alice.Interval.Start) {
					t.Errorf("expected conflict start %s, got %s", alice.Interval.Start, conflicts[0].StartTime)
				}
			}
		})
	}
}

func TestScanChecker_CancelledInterviewsExcluded(t *testing.T) {
	s := store.NewMemoryStore()
	checker := NewScanChecker(s)
	ctx := context.Background()
	nine := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	alice := seedInterview(t, s, "Alice", nine, 60)
	if _, err := s.Cancel(ctx, alice.ID, "reschedule"); err != nil {
		t.Fatalf("failed to cancel: %v", err)
	}

	conflicts, err := checker.Conflicts(ctx, model.Interval{Start: nine, End: nine.Add(time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("cancelled interview must not conflict, got %d conflicts", len(conflicts))
	}
}

func TestScanChecker_ReportsAllOverlappingInterviews(t *testing.T) {
	s := store.NewMemoryStore()
	checker := NewScanChecker(s)
	nine := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	seedInterview(t, s, "Alice", nine, 60)
	seedInterview(t, s, "Bob", nine.Add(time.Hour), 60)

	// 09:30-10:30 crosses both bookings.
	interval := model.Interval{Start: nine.Add(30 * time.Minute), End: nine.Add(90 * time.Minute)}
	conflicts, err := checker.Conflicts(context.Background(), interval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(conflicts))
	}
}
