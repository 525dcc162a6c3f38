// Package visits keeps the last-visit timestamp of anonymous visitors.
package visits

import (
	"context"
	"sync"
	"time"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

// MemoryStore keeps visits in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	visits map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{visits: make(map[string]time.Time)}
}

func (s *MemoryStore) Touch(_ context.Context, visitorID string, now time.Time) (*domain.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.visits[visitorID]
	s.visits[visitorID] = now
	if !ok {
		return nil, nil
	}
	return &domain.Visit{VisitorID: visitorID, LastVisit: prev}, nil
}

func (s *MemoryStore) Get(_ context.Context, visitorID string) (*domain.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.visits[visitorID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Visit{VisitorID: visitorID, LastVisit: last}, nil
}

var _ domain.VisitRepository = (*MemoryStore)(nil)
