package store

import (
	"context"
	"sync"
	"time"

	schederrors "hireline/internal/scheduling/errors"
	"hireline/pkg/model"
)

type atomicCtxKey struct{}

// MemoryStore is the in-memory authoritative interview collection. All
// mutation goes through a single mutex; ExecuteAtomic exposes that mutex as
// a critical section so callers can make check-then-insert atomic.
type MemoryStore struct {
	mu         sync.Mutex
	interviews []*model.Interview
	lastID     int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		interviews: make([]*model.Interview, 0),
	}
}

func inAtomic(ctx context.Context) bool {
	held, ok := ctx.Value(atomicCtxKey{}).(bool)
	return ok && held
}

// acquire locks the store unless the context already holds the lock via
// ExecuteAtomic. Returns the matching release func.
func (s *MemoryStore) acquire(ctx context.Context) func() {
	if inAtomic(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) ExecuteAtomic(ctx context.Context, fn AtomicFunc) error {
	if inAtomic(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, atomicCtxKey{}, true))
}

func (s *MemoryStore) NextID(ctx context.Context) int64 {
	release := s.acquire(ctx)
	defer release()

	s.lastID++
	return s.lastID
}

func (s *MemoryStore) Append(ctx context.Context, interview *model.Interview) error {
	release := s.acquire(ctx)
	defer release()

	clone := *interview
	s.interviews = append(s.interviews, &clone)
	return nil
}

func (s *MemoryStore) All(ctx context.Context) ([]*model.Interview, error) {
	release := s.acquire(ctx)
	defer release()

	// Snapshot copies so callers never observe in-place cancellation writes.
	out := make([]*model.Interview, 0, len(s.interviews))
	for _, iv := range s.interviews {
		clone := *iv
		out = append(out, &clone)
	}
	return out, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id int64) (*model.Interview, error) {
	release := s.acquire(ctx)
	defer release()

	for _, iv := range s.interviews {
		if iv.ID == id {
			clone := *iv
			return &clone, nil
		}
	}
	return nil, schederrors.ErrNotFound
}

func (s *MemoryStore) Cancel(ctx context.Context, id int64, reason string) (*model.Interview, error) {
	release := s.acquire(ctx)
	defer release()

	for _, iv := range s.interviews {
		if iv.ID != id {
			continue
		}
		if iv.Status == model.StatusCancelled {
			return nil, schederrors.ErrAlreadyCancelled
		}

		now := time.Now().UTC()
		iv.Status = model.StatusCancelled
		iv.CancelledAt = &now
		iv.CancellationReason = reason

		clone := *iv
		return &clone, nil
	}
	return nil, schederrors.ErrNotFound
}
