package models

// Booking represents a client's confirmed reservation against one slot.
type Booking struct {
	ID        string `json:"id"`         // Unique booking identifier
	SlotID    string `json:"slot_id"`    // Slot this booking holds
	Name      string `json:"name"`       // Client name
	Email     string `json:"email"`      // Client email
	Phone     string `json:"phone"`      // Client phone
	DogName   string `json:"dog_name"`   // Name of the dog the walk is for
	Notes     string `json:"notes"`      // Free-text notes
	Status    Status `json:"status"`     // new, in_progress or complete
	Confirmed bool   `json:"confirmed"`  // Set by an administrative status update
	CreatedAt string `json:"created_at"` // Timestamp when the booking was created
	UpdatedAt string `json:"updated_at"` // Timestamp of the last status update

	Seq int64 `json:"-"` // Insertion sequence, breaks ordering ties
}

// BookingView is a booking serialized with its current slot embedded.
// Slot is nil when the referenced slot no longer resolves.
type BookingView struct {
	Booking
	Slot *Slot `json:"slot,omitempty"`
}
