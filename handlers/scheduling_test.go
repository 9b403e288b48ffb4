package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawsitive/services/scheduling"
	"pawsitive/store"
)

func newSchedulingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := &scheduling.DefaultSchedulingEngine{
		Store:  store.NewSchedulerStore(),
		Logger: zap.NewNop(),
	}
	h := NewSchedulingHandler(engine, zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/slots", h.ListSlots)
	api.POST("/slots", h.CreateSlot)
	api.DELETE("/slots/:id", h.DeleteSlot)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.PATCH("/bookings/:id", h.UpdateBookingStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, w.Body.String(), err)
	}
	return w, out
}

func createSlot(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, out := doJSON(t, r, http.MethodPost, "/api/slots", gin.H{
		"date":             "2026-09-01",
		"time":             "09:00",
		"duration_minutes": 60,
		"price":            18.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create slot: status %d body %s", w.Code, w.Body.String())
	}
	var slot struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out["slot"], &slot); err != nil || slot.ID == "" {
		t.Fatalf("create slot response missing id: %s", w.Body.String())
	}
	return slot.ID
}

func TestSlotEndpoints(t *testing.T) {
	r := newSchedulingRouter()

	// Validation failures surface as 400s.
	w, _ := doJSON(t, r, http.MethodPost, "/api/slots", gin.H{"time": "09:00"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("slot without date: status %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/api/slots?filter=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown filter: status %d", w.Code)
	}

	id := createSlot(t, r)

	w, out := doJSON(t, r, http.MethodGet, "/api/slots?filter=available", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list slots: status %d", w.Code)
	}
	var slots []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out["slots"], &slots); err != nil || len(slots) != 1 || slots[0].ID != id {
		t.Fatalf("unexpected slot listing: %s", w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/slots/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete slot: status %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, "/api/slots/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing slot: status %d", w.Code)
	}
}

func TestBookingEndpoints(t *testing.T) {
	r := newSchedulingRouter()
	id := createSlot(t, r)

	booking := gin.H{
		"slot_id":  id,
		"name":     "Priya",
		"email":    "priya@example.com",
		"phone":    "07700 900123",
		"dog_name": "Biscuit",
	}

	w, out := doJSON(t, r, http.MethodPost, "/api/bookings", booking)
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: status %d body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out["booking"], &created); err != nil || created.ID == "" {
		t.Fatalf("create booking response missing id: %s", w.Body.String())
	}

	// The slot is taken now.
	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", booking)
	if w.Code != http.StatusConflict {
		t.Fatalf("double booking: status %d", w.Code)
	}
	// And it cannot be removed while booked.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/slots/"+id, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete booked slot: status %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"slot_id": "nope", "name": "A", "email": "a@b.c", "phone": "1", "dog_name": "Rex",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("booking unknown slot: status %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPatch, "/api/bookings/"+created.ID, gin.H{"status": "in_progress"})
	if w.Code != http.StatusOK {
		t.Fatalf("update booking status: status %d body %s", w.Code, w.Body.String())
	}
	w, _ = doJSON(t, r, http.MethodPatch, "/api/bookings/"+created.ID, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty booking update: status %d", w.Code)
	}

	w, out = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list bookings: status %d", w.Code)
	}
	var bookings []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(out["bookings"], &bookings); err != nil || len(bookings) != 1 {
		t.Fatalf("unexpected bookings listing: %s", w.Body.String())
	}
	if bookings[0].ID != created.ID || bookings[0].Status != "in_progress" {
		t.Fatalf("unexpected booking state: %+v", bookings[0])
	}
}
