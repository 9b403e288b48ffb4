package store

import (
	"sync"

	"pawsitive/models"
)

// SchedulerStore owns both slots and bookings. Keeping them behind one
// mutex makes the slot booked-flag and the booking that holds it a
// single invariant: two concurrent booking attempts against the same
// slot cannot both succeed.
type SchedulerStore struct {
	mu       sync.RWMutex
	slots    map[string]*models.Slot
	bookings map[string]*models.Booking
	seq      int64
}

// NewSchedulerStore returns an empty scheduler store.
func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{
		slots:    make(map[string]*models.Slot),
		bookings: make(map[string]*models.Booking),
	}
}

// AddSlot inserts a slot and assigns its insertion sequence.
func (s *SchedulerStore) AddSlot(slot models.Slot) models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	slot.Seq = s.seq
	stored := slot
	s.slots[slot.ID] = &stored
	return slot
}

// Slot returns a copy of the slot with the given identifier.
func (s *SchedulerStore) Slot(id string) (models.Slot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return models.Slot{}, false
	}
	return *slot, true
}

// Slots returns copies of all slots in no particular order.
func (s *SchedulerStore) Slots() []models.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, *slot)
	}
	return out
}

// RemoveSlot deletes an unbooked slot. A booked slot cannot be removed
// while its booking exists.
func (s *SchedulerStore) RemoveSlot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	if slot.Booked {
		return ErrSlotBooked
	}
	delete(s.slots, id)
	return nil
}

// AddBooking performs the check-then-set reservation: the slot must
// exist and be unbooked, and marking it booked plus inserting the
// booking happen atomically. Returns the stored booking and the
// updated slot.
func (s *SchedulerStore) AddBooking(booking models.Booking) (models.Booking, models.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[booking.SlotID]
	if !ok {
		return models.Booking{}, models.Slot{}, ErrSlotNotFound
	}
	if slot.Booked {
		return models.Booking{}, models.Slot{}, ErrSlotBooked
	}

	s.seq++
	booking.Seq = s.seq
	stored := booking
	s.bookings[booking.ID] = &stored

	slot.Booked = true
	slot.BookingID = booking.ID
	return booking, *slot, nil
}

// Booking returns a copy of the booking with the given identifier.
func (s *SchedulerStore) Booking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, false
	}
	return *booking, true
}

// Bookings returns copies of all bookings in no particular order.
func (s *SchedulerStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		out = append(out, *booking)
	}
	return out
}

// UpdateBooking applies a mutation to the booking under the store lock
// and returns the updated copy.
func (s *SchedulerStore) UpdateBooking(id string, apply func(*models.Booking)) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, ErrBookingNotFound
	}
	apply(booking)
	return *booking, nil
}
