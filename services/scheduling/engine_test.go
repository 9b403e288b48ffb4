package scheduling

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

func newTestEngine() *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Store:  store.NewSchedulerStore(),
		Logger: zap.NewNop(),
	}
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, appErr.Kind, err)
	}
}

func mustCreateSlot(t *testing.T, se *DefaultSchedulingEngine, date, timeOfDay string) models.Slot {
	t.Helper()
	slot, _, err := se.CreateSlot(SlotInput{Date: date, Time: timeOfDay, Duration: 30, Price: 20})
	if err != nil {
		t.Fatalf("CreateSlot(%s %s) failed: %v", date, timeOfDay, err)
	}
	return slot
}

func validBooking(slotID string) BookingInput {
	return BookingInput{
		SlotID:  slotID,
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Phone:   "07700900000",
		DogName: "Biscuit",
	}
}

func TestCreateSlot_Validation(t *testing.T) {
	se := newTestEngine()

	cases := []struct {
		name  string
		input SlotInput
	}{
		{"missing date", SlotInput{Time: "09:00", Duration: 30, Price: 20}},
		{"missing time", SlotInput{Date: "2024-06-01", Duration: 30, Price: 20}},
		{"zero duration", SlotInput{Date: "2024-06-01", Time: "09:00", Duration: 0, Price: 20}},
		{"negative duration", SlotInput{Date: "2024-06-01", Time: "09:00", Duration: -15, Price: 20}},
		{"negative price", SlotInput{Date: "2024-06-01", Time: "09:00", Duration: 30, Price: -1}},
		{"unparsable datetime", SlotInput{Date: "June 1st", Time: "morning", Duration: 30, Price: 20}},
	}
	for _, tc := range cases {
		_, _, err := se.CreateSlot(tc.input)
		requireKind(t, err, utils.KindValidation)
	}

	slots, err := se.ListSlots(FilterAll)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots after failed creates, got %d", len(slots))
	}
}

func TestCreateSlot_DerivesStartInstant(t *testing.T) {
	se := newTestEngine()

	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")
	if slot.StartAt != "2024-06-01T09:00:00.000000Z" {
		t.Fatalf("unexpected start instant: %q", slot.StartAt)
	}
	if slot.Booked {
		t.Fatalf("new slot should not be booked")
	}
	if slot.ID == "" || slot.CreatedAt == "" {
		t.Fatalf("slot missing identity fields: %+v", slot)
	}
}

func TestListSlots_OrderedByStartThenCreation(t *testing.T) {
	se := newTestEngine()

	late := mustCreateSlot(t, se, "2024-06-02", "10:00")
	early := mustCreateSlot(t, se, "2024-06-01", "09:00")
	// Same start as early, created after it: creation order breaks the tie.
	tied := mustCreateSlot(t, se, "2024-06-01", "09:00")

	slots, err := se.ListSlots(FilterAll)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if slots[0].ID != early.ID || slots[1].ID != tied.ID || slots[2].ID != late.ID {
		t.Fatalf("unexpected order: %s %s %s", slots[0].ID, slots[1].ID, slots[2].ID)
	}
}

func TestListSlots_UnknownFilter(t *testing.T) {
	se := newTestEngine()
	_, err := se.ListSlots(SlotFilter("everything"))
	requireKind(t, err, utils.KindValidation)
}

func TestBookingRemovesSlotFromAvailableListing(t *testing.T) {
	se := newTestEngine()
	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")

	available, err := se.ListSlots(FilterAvailable)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(available) != 1 || available[0].ID != slot.ID {
		t.Fatalf("expected the new slot to be available, got %+v", available)
	}

	if _, _, err := se.CreateBooking(validBooking(slot.ID)); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	available, err = se.ListSlots(FilterAvailable)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(available) != 0 {
		t.Fatalf("booked slot still listed as available: %+v", available)
	}

	all, err := se.ListSlots(FilterAll)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(all) != 1 || !all[0].Booked {
		t.Fatalf("expected one booked slot in the unfiltered listing, got %+v", all)
	}
}

func TestDeleteSlot(t *testing.T) {
	se := newTestEngine()

	_, err := se.DeleteSlot("missing")
	requireKind(t, err, utils.KindNotFound)

	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")
	if _, _, err := se.CreateBooking(validBooking(slot.ID)); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	_, err = se.DeleteSlot(slot.ID)
	requireKind(t, err, utils.KindConflict)

	free := mustCreateSlot(t, se, "2024-06-02", "09:00")
	slots, err := se.DeleteSlot(free.ID)
	if err != nil {
		t.Fatalf("DeleteSlot failed: %v", err)
	}
	for _, s := range slots {
		if s.ID == free.ID {
			t.Fatalf("deleted slot still listed")
		}
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	se := newTestEngine()
	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")

	for _, mutate := range []func(*BookingInput){
		func(b *BookingInput) { b.Name = "  " },
		func(b *BookingInput) { b.Email = "" },
		func(b *BookingInput) { b.Phone = "" },
		func(b *BookingInput) { b.DogName = "" },
	} {
		input := validBooking(slot.ID)
		mutate(&input)
		_, _, err := se.CreateBooking(input)
		requireKind(t, err, utils.KindValidation)
	}

	_, _, err := se.CreateBooking(validBooking("missing"))
	requireKind(t, err, utils.KindNotFound)
}

func TestCreateBooking_ReturnsEmbeddedSlot(t *testing.T) {
	se := newTestEngine()
	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")

	view, available, err := se.CreateBooking(validBooking(slot.ID))
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if view.Status != models.StatusNew || view.Confirmed {
		t.Fatalf("new booking has wrong lifecycle state: %+v", view.Booking)
	}
	if view.Slot == nil || view.Slot.ID != slot.ID || !view.Slot.Booked {
		t.Fatalf("expected booked slot embedded, got %+v", view.Slot)
	}
	if view.Slot.BookingID != view.ID {
		t.Fatalf("slot not linked back to booking")
	}
	if len(available) != 0 {
		t.Fatalf("expected no available slots, got %d", len(available))
	}
}

func TestCreateBooking_ConcurrentAttemptsOneWins(t *testing.T) {
	se := newTestEngine()
	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = se.CreateBooking(validBooking(slot.ID))
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Kind == utils.KindConflict {
			conflicts++
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one booking to win, got %d", successes)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
	if len(se.ListBookings()) != 1 {
		t.Fatalf("slot booked more than once")
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	se := newTestEngine()
	slot := mustCreateSlot(t, se, "2024-06-01", "09:00")
	view, _, err := se.CreateBooking(validBooking(slot.ID))
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	_, _, err = se.UpdateBookingStatus("missing", StatusUpdate{Confirmed: boolPtr(true)})
	requireKind(t, err, utils.KindNotFound)

	_, _, err = se.UpdateBookingStatus(view.ID, StatusUpdate{})
	requireKind(t, err, utils.KindValidation)

	_, _, err = se.UpdateBookingStatus(view.ID, StatusUpdate{Status: strPtr("BAD")})
	requireKind(t, err, utils.KindValidation)

	updated, bookings, err := se.UpdateBookingStatus(view.ID, StatusUpdate{Status: strPtr("In-Progress")})
	if err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}
	if updated.Status != models.StatusInProgress {
		t.Fatalf("expected normalized in_progress, got %q", updated.Status)
	}
	if updated.UpdatedAt == view.UpdatedAt {
		t.Fatalf("update timestamp not stamped")
	}
	if len(bookings) != 1 {
		t.Fatalf("expected full booking listing, got %d entries", len(bookings))
	}

	updated, _, err = se.UpdateBookingStatus(view.ID, StatusUpdate{Confirmed: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}
	if !updated.Confirmed || updated.Status != models.StatusInProgress {
		t.Fatalf("confirm-only update disturbed status: %+v", updated.Booking)
	}
}

func TestListBookings_OrderedBySlotStart(t *testing.T) {
	se := newTestEngine()
	late := mustCreateSlot(t, se, "2024-06-02", "10:00")
	early := mustCreateSlot(t, se, "2024-06-01", "09:00")

	lateView, _, err := se.CreateBooking(validBooking(late.ID))
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	earlyView, _, err := se.CreateBooking(validBooking(early.ID))
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	bookings := se.ListBookings()
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].ID != earlyView.ID || bookings[1].ID != lateView.ID {
		t.Fatalf("bookings not ordered by slot start")
	}
	for _, b := range bookings {
		if b.Slot == nil {
			t.Fatalf("booking %s missing slot embed", b.ID)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
