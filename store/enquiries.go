package store

import (
	"sort"
	"sync"

	"pawsitive/models"
)

// EnquiryStore holds contact-form submissions.
type EnquiryStore struct {
	mu        sync.RWMutex
	enquiries map[string]*models.Enquiry
	seq       int64
}

// NewEnquiryStore returns an empty enquiry store.
func NewEnquiryStore() *EnquiryStore {
	return &EnquiryStore{enquiries: make(map[string]*models.Enquiry)}
}

// Add inserts an enquiry and assigns its insertion sequence.
func (s *EnquiryStore) Add(enquiry models.Enquiry) models.Enquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	enquiry.Seq = s.seq
	stored := enquiry
	s.enquiries[enquiry.ID] = &stored
	return enquiry
}

// Get returns a copy of the enquiry with the given identifier.
func (s *EnquiryStore) Get(id string) (models.Enquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enquiry, ok := s.enquiries[id]
	if !ok {
		return models.Enquiry{}, false
	}
	return *enquiry, true
}

// Update applies a mutation to the enquiry under the store lock and
// returns the updated copy.
func (s *EnquiryStore) Update(id string, apply func(*models.Enquiry)) (models.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enquiry, ok := s.enquiries[id]
	if !ok {
		return models.Enquiry{}, ErrEnquiryNotFound
	}
	apply(enquiry)
	return *enquiry, nil
}

// Remove deletes the enquiry with the given identifier.
func (s *EnquiryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enquiries[id]; !ok {
		return ErrEnquiryNotFound
	}
	delete(s.enquiries, id)
	return nil
}

// All returns every enquiry, newest first.
func (s *EnquiryStore) All() []models.Enquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Enquiry, 0, len(s.enquiries))
	for _, enquiry := range s.enquiries {
		out = append(out, *enquiry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Seq > out[j].Seq
	})
	return out
}
