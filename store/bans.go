package store

import (
	"sort"
	"sync"

	"pawsitive/models"
)

// BanStore keeps at most one ban record per client identifier.
type BanStore struct {
	mu      sync.RWMutex
	records map[string]*models.BanRecord
}

// NewBanStore returns an empty ban store.
func NewBanStore() *BanStore {
	return &BanStore{records: make(map[string]*models.BanRecord)}
}

// Upsert creates or reactivates the ban for identifier. The second
// return value reports whether a new record was created.
func (s *BanStore) Upsert(identifier, reason, now string) (models.BanRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[identifier]
	if !ok {
		record = &models.BanRecord{
			Identifier: identifier,
			CreatedAt:  now,
		}
		s.records[identifier] = record
	}
	record.Active = true
	record.Reason = reason
	record.UpdatedAt = now
	return *record, !ok
}

// Deactivate lifts the ban for identifier, keeping the record.
func (s *BanStore) Deactivate(identifier, now string) (models.BanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[identifier]
	if !ok {
		return models.BanRecord{}, ErrBanNotFound
	}
	record.Active = false
	record.UpdatedAt = now
	return *record, nil
}

// IsBanned reports whether identifier currently holds an active ban.
func (s *BanStore) IsBanned(identifier string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[identifier]
	return ok && record.Active
}

// All returns every ban record, most recently updated first.
func (s *BanStore) All() []models.BanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BanRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, *record)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}
