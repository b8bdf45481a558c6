package store

import (
	"context"

	"hireline/pkg/model"
)

// AtomicFunc runs inside the store's critical section. All reads and writes
// performed through the store within fn observe and produce a consistent
// snapshot; in particular a conflict check followed by an append cannot
// interleave with another scheduling attempt.
type AtomicFunc func(ctx context.Context) error

// InterviewStore is the single source of truth for interview bookings.
// Interviews are only ever appended and mutated in place via cancellation;
// nothing is removed. A persistent implementation must honor the same
// atomicity contract as ExecuteAtomic (e.g. a transaction with an exclusion
// constraint on overlapping intervals).
type InterviewStore interface {
	// NextID allocates a fresh, strictly increasing identifier. IDs are
	// never reused, including after cancellation.
	NextID(ctx context.Context) int64

	// Append adds a new interview to the collection. It is the only way an
	// interview enters the store.
	Append(ctx context.Context, interview *model.Interview) error

	// All returns every interview ever created, including cancelled ones,
	// in creation order.
	All(ctx context.Context) ([]*model.Interview, error)

	// FindByID returns the interview with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Interview, error)

	// Cancel transitions a scheduled interview to cancelled, stamping the
	// cancellation time and reason. Returns ErrNotFound for unknown ids and
	// ErrAlreadyCancelled when the transition already happened.
	Cancel(ctx context.Context, id int64, reason string) (*model.Interview, error)

	// ExecuteAtomic runs fn while holding the store's write lock.
	ExecuteAtomic(ctx context.Context, fn AtomicFunc) error
}
