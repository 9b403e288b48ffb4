package store

import (
	"sync"

	"pawsitive/models"
)

const (
	// MaxVisitors is the ceiling on distinct tracked visitors; once a
	// new entry pushes the store past it, the oldest by first-seen is
	// evicted inline.
	MaxVisitors = 500

	// visitHistory bounds each visitor's recent-visit list.
	visitHistory = 10
)

// VisitorStore tracks distinct site visitors by cookie identifier.
type VisitorStore struct {
	mu       sync.RWMutex
	visitors map[string]*models.Visitor
	limit    int
}

// NewVisitorStore returns an empty visitor store with the default ceiling.
func NewVisitorStore() *VisitorStore {
	return &VisitorStore{
		visitors: make(map[string]*models.Visitor),
		limit:    MaxVisitors,
	}
}

// Track upserts the visitor entry for id, recording one visit. Eviction
// of the globally oldest entry happens synchronously when a genuinely
// new entry pushes the store past its ceiling.
func (s *VisitorStore) Track(id, path, addr, now string) models.Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	visitor, ok := s.visitors[id]
	if !ok {
		visitor = &models.Visitor{
			ID:        id,
			FirstSeen: now,
		}
		s.visitors[id] = visitor
		if len(s.visitors) > s.limit {
			s.evictOldest()
		}
	}

	visitor.LastSeen = now
	visitor.VisitCount++
	visitor.RemoteAddr = addr
	visitor.LastPath = path
	visitor.Visits = append(visitor.Visits, models.Visit{Path: path, At: now})
	if len(visitor.Visits) > visitHistory {
		visitor.Visits = visitor.Visits[len(visitor.Visits)-visitHistory:]
	}

	copied := *visitor
	copied.Visits = append([]models.Visit(nil), visitor.Visits...)
	return copied
}

// evictOldest removes the entry with the smallest first-seen timestamp.
// Must be called with the lock held.
func (s *VisitorStore) evictOldest() {
	var oldest string
	for id, visitor := range s.visitors {
		if oldest == "" {
			oldest = id
			continue
		}
		prev := s.visitors[oldest]
		if visitor.FirstSeen < prev.FirstSeen ||
			(visitor.FirstSeen == prev.FirstSeen && id < oldest) {
			oldest = id
		}
	}
	if oldest != "" {
		delete(s.visitors, oldest)
	}
}

// All returns copies of every tracked visitor in no particular order.
func (s *VisitorStore) All() []models.Visitor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Visitor, 0, len(s.visitors))
	for _, visitor := range s.visitors {
		copied := *visitor
		copied.Visits = append([]models.Visit(nil), visitor.Visits...)
		out = append(out, copied)
	}
	return out
}

// Len reports the number of tracked visitors.
func (s *VisitorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}
