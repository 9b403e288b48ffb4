package scheduling

import "pawsitive/models"

// SlotFilter selects which slots a listing returns.
type SlotFilter string

const (
	FilterAll       SlotFilter = "all"
	FilterAvailable SlotFilter = "available"
	FilterBooked    SlotFilter = "booked"
)

// SlotInput carries the fields of an administrative slot creation.
type SlotInput struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration int     `json:"duration_minutes"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

// BookingInput carries the fields of a client reservation.
type BookingInput struct {
	SlotID  string `json:"slot_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	DogName string `json:"dog_name"`
	Notes   string `json:"notes"`
}

// StatusUpdate carries an administrative booking update. Nil fields are
// left untouched; supplying neither is an error.
type StatusUpdate struct {
	Status    *string `json:"status"`
	Confirmed *bool   `json:"confirmed"`
}

// SchedulingEngine owns the slot and booking lifecycle.
type SchedulingEngine interface {
	CreateSlot(input SlotInput) (models.Slot, []models.Slot, error)
	ListSlots(filter SlotFilter) ([]models.Slot, error)
	DeleteSlot(slotID string) ([]models.Slot, error)
	CreateBooking(input BookingInput) (models.BookingView, []models.Slot, error)
	UpdateBookingStatus(bookingID string, update StatusUpdate) (models.BookingView, []models.BookingView, error)
	ListBookings() []models.BookingView
}
