package scheduling

import (
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

// slotDatetimeLayout combines the date and time fields of a slot into
// its start instant.
const slotDatetimeLayout = "2006-01-02 15:04"

// DefaultSchedulingEngine is the production implementation backed by
// the in-memory scheduler store.
type DefaultSchedulingEngine struct {
	Store  *store.SchedulerStore
	Logger *zap.Logger
}

// parseSlotStart derives the start instant of a slot's date/time pair.
func parseSlotStart(date, timeOfDay string) (time.Time, error) {
	return time.Parse(slotDatetimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(timeOfDay))
}

// CreateSlot validates the input, derives the start instant and stores
// the new slot. Returns the slot and the full, freshly sorted listing.
func (se *DefaultSchedulingEngine) CreateSlot(input SlotInput) (models.Slot, []models.Slot, error) {
	date := strings.TrimSpace(input.Date)
	timeOfDay := strings.TrimSpace(input.Time)
	if date == "" || timeOfDay == "" {
		return models.Slot{}, nil, utils.ValidationError("Date and time are required.")
	}
	if input.Duration <= 0 {
		return models.Slot{}, nil, utils.ValidationError("Duration must be a positive number of minutes.")
	}
	if input.Price < 0 {
		return models.Slot{}, nil, utils.ValidationError("Price cannot be negative.")
	}
	start, err := parseSlotStart(date, timeOfDay)
	if err != nil {
		return models.Slot{}, nil, utils.ValidationError("Date and time could not be understood. Use YYYY-MM-DD and HH:MM.")
	}

	slot := models.Slot{
		ID:        utils.NewID(),
		Date:      date,
		Time:      timeOfDay,
		Duration:  input.Duration,
		Price:     input.Price,
		Notes:     strings.TrimSpace(input.Notes),
		StartAt:   utils.FormatTime(start),
		CreatedAt: utils.Timestamp(),
	}
	slot = se.Store.AddSlot(slot)
	se.Logger.Info("slot created",
		zap.String("slot_id", slot.ID),
		zap.String("start_at", slot.StartAt),
	)
	return slot, se.sortedSlots(FilterAll), nil
}

// ListSlots returns slots matching filter, ordered by ascending start
// instant with creation order breaking ties. The order is recomputed on
// every call; slots whose start cannot be derived sort last.
func (se *DefaultSchedulingEngine) ListSlots(filter SlotFilter) ([]models.Slot, error) {
	switch filter {
	case FilterAll, FilterAvailable, FilterBooked:
	case "":
		filter = FilterAll
	default:
		return nil, utils.ValidationError("Filter must be one of all, available or booked.")
	}
	return se.sortedSlots(filter), nil
}

func (se *DefaultSchedulingEngine) sortedSlots(filter SlotFilter) []models.Slot {
	slots := se.Store.Slots()
	filtered := slots[:0]
	for _, slot := range slots {
		switch filter {
		case FilterAvailable:
			if slot.Booked {
				continue
			}
		case FilterBooked:
			if !slot.Booked {
				continue
			}
		}
		filtered = append(filtered, slot)
	}
	sortSlots(filtered)
	return filtered
}

// sortSlots orders by start instant ascending, then insertion sequence.
// An empty start (unparsable date/time) sorts after everything else.
func sortSlots(slots []models.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.StartAt != b.StartAt {
			if a.StartAt == "" {
				return false
			}
			if b.StartAt == "" {
				return true
			}
			return a.StartAt < b.StartAt
		}
		return a.Seq < b.Seq
	})
}

// DeleteSlot removes an unbooked slot and returns the remaining listing.
func (se *DefaultSchedulingEngine) DeleteSlot(slotID string) ([]models.Slot, error) {
	if err := se.Store.RemoveSlot(slotID); err != nil {
		switch {
		case errors.Is(err, store.ErrSlotNotFound):
			return nil, utils.NotFoundError("No slot found with that id.")
		case errors.Is(err, store.ErrSlotBooked):
			return nil, utils.ConflictError("That slot has an active booking and cannot be removed.")
		default:
			return nil, err
		}
	}
	se.Logger.Info("slot removed", zap.String("slot_id", slotID))
	return se.sortedSlots(FilterAll), nil
}

// CreateBooking reserves a slot for a client. The slot lookup, booked
// check and booking insert are one atomic store operation, so of two
// concurrent attempts exactly one wins. Returns the booking with its
// slot embedded plus the remaining available slots.
func (se *DefaultSchedulingEngine) CreateBooking(input BookingInput) (models.BookingView, []models.Slot, error) {
	slotID := strings.TrimSpace(input.SlotID)
	if slotID == "" {
		return models.BookingView{}, nil, utils.ValidationError("Slot id is required.")
	}
	for _, field := range []struct{ name, value string }{
		{"Name", input.Name},
		{"Email", input.Email},
		{"Phone", input.Phone},
		{"Dog name", input.DogName},
	} {
		if strings.TrimSpace(field.value) == "" {
			return models.BookingView{}, nil, utils.ValidationError("%s is required.", field.name)
		}
	}

	now := utils.Timestamp()
	booking := models.Booking{
		ID:        utils.NewID(),
		SlotID:    slotID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		DogName:   strings.TrimSpace(input.DogName),
		Notes:     strings.TrimSpace(input.Notes),
		Status:    models.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	booking, slot, err := se.Store.AddBooking(booking)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSlotNotFound):
			// Expected race: the slot was removed after the client
			// loaded its listing.
			return models.BookingView{}, nil, utils.NotFoundError("That slot is no longer available. Please refresh the slot list and pick another time.")
		case errors.Is(err, store.ErrSlotBooked):
			return models.BookingView{}, nil, utils.ConflictError("That slot has just been booked by someone else. Please pick another time.")
		default:
			return models.BookingView{}, nil, err
		}
	}

	se.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("slot_id", slot.ID),
	)
	view := models.BookingView{Booking: booking, Slot: &slot}
	return view, se.sortedSlots(FilterAvailable), nil
}

// UpdateBookingStatus applies an administrative status and/or
// confirmation change and returns the booking plus the full listing.
func (se *DefaultSchedulingEngine) UpdateBookingStatus(bookingID string, update StatusUpdate) (models.BookingView, []models.BookingView, error) {
	if update.Status == nil && update.Confirmed == nil {
		return models.BookingView{}, nil, utils.ValidationError("No changes supplied.")
	}

	var status models.Status
	if update.Status != nil {
		parsed, ok := models.ParseStatus(*update.Status)
		if !ok {
			return models.BookingView{}, nil, utils.ValidationError("Status must be one of new, in_progress or complete.")
		}
		status = parsed
	}

	booking, err := se.Store.UpdateBooking(bookingID, func(b *models.Booking) {
		if update.Status != nil {
			b.Status = status
		}
		if update.Confirmed != nil {
			b.Confirmed = *update.Confirmed
		}
		b.UpdatedAt = utils.Timestamp()
	})
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return models.BookingView{}, nil, utils.NotFoundError("No booking found with that id.")
		}
		return models.BookingView{}, nil, err
	}

	se.Logger.Info("booking updated",
		zap.String("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
		zap.Bool("confirmed", booking.Confirmed),
	)
	return se.bookingView(booking), se.ListBookings(), nil
}

// ListBookings returns every booking with its slot embedded, ordered by
// the slot's start instant ascending, booking creation breaking ties.
// Bookings whose slot cannot be resolved sort last, with the embed
// omitted rather than failing.
func (se *DefaultSchedulingEngine) ListBookings() []models.BookingView {
	bookings := se.Store.Bookings()
	views := make([]models.BookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, se.bookingView(booking))
	}
	sort.Slice(views, func(i, j int) bool {
		a, b := bookingSortKey(views[i]), bookingSortKey(views[j])
		if a != b {
			if a == "" {
				return false
			}
			if b == "" {
				return true
			}
			return a < b
		}
		return views[i].Seq < views[j].Seq
	})
	return views
}

func (se *DefaultSchedulingEngine) bookingView(booking models.Booking) models.BookingView {
	view := models.BookingView{Booking: booking}
	if slot, ok := se.Store.Slot(booking.SlotID); ok {
		view.Slot = &slot
	}
	return view
}

func bookingSortKey(view models.BookingView) string {
	if view.Slot == nil {
		return ""
	}
	return view.Slot.StartAt
}
