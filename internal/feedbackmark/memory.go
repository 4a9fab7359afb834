package feedbackmark

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is a process-local mark store. It backs tests and serves as
// the degraded mode when Redis is unavailable; losing marks on restart only
// re-enables a button.
type MemoryStore struct {
	mu    sync.RWMutex
	marks map[int64]map[int64]struct{}
}

// NewMemoryStore creates an empty in-memory mark store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{marks: make(map[int64]map[int64]struct{})}
}

func (s *MemoryStore) Mark(_ context.Context, interviewerID, interviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.marks[interviewerID]
	if !ok {
		set = make(map[int64]struct{})
		s.marks[interviewerID] = set
	}
	set[interviewID] = struct{}{}
	return nil
}

func (s *MemoryStore) IsMarked(_ context.Context, interviewerID, interviewID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.marks[interviewerID][interviewID]
	return ok, nil
}

func (s *MemoryStore) Clear(_ context.Context, interviewerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.marks, interviewerID)
	return nil
}
