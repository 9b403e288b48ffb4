package models

// Slot represents an administrator-defined bookable time window.
type Slot struct {
	ID        string  `json:"id"`                   // Unique slot identifier
	Date      string  `json:"date"`                 // Calendar date, "YYYY-MM-DD"
	Time      string  `json:"time"`                 // Wall-clock time, "HH:MM"
	Duration  int     `json:"duration_minutes"`     // Duration in minutes, always > 0
	Price     float64 `json:"price"`                // Price for the window, non-negative
	Notes     string  `json:"notes"`                // Free-text notes
	Booked    bool    `json:"booked"`               // True iff exactly one booking references this slot
	BookingID string  `json:"booking_id,omitempty"` // Identifier of the booking holding this slot
	StartAt   string  `json:"start_at,omitempty"`   // Derived combined start instant; empty if date/time unparsable
	CreatedAt string  `json:"created_at"`           // Timestamp when the slot was created

	Seq int64 `json:"-"` // Insertion sequence, breaks ordering ties
}
