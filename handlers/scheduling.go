package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawsitive/services/scheduling"
	"pawsitive/utils"
)

// SchedulingHandler exposes the slot and booking endpoints.
type SchedulingHandler struct {
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

func NewSchedulingHandler(engine scheduling.SchedulingEngine, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine, Logger: logger}
}

// ListSlots handles GET /api/slots?filter=all|available|booked.
func (h *SchedulingHandler) ListSlots(c *gin.Context) {
	filter := scheduling.SlotFilter(c.DefaultQuery("filter", "all"))
	slots, err := h.Engine.ListSlots(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateSlot handles POST /api/slots.
func (h *SchedulingHandler) CreateSlot(c *gin.Context) {
	var input scheduling.SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	slot, slots, err := h.Engine.CreateSlot(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slot": slot, "slots": slots})
}

// DeleteSlot handles DELETE /api/slots/:id.
func (h *SchedulingHandler) DeleteSlot(c *gin.Context) {
	slots, err := h.Engine.DeleteSlot(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true, "slots": slots})
}

// CreateBooking handles POST /api/bookings.
func (h *SchedulingHandler) CreateBooking(c *gin.Context) {
	var input scheduling.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	booking, available, err := h.Engine.CreateBooking(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking, "slots": available})
}

// ListBookings handles GET /api/bookings.
func (h *SchedulingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Engine.ListBookings()})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id.
func (h *SchedulingHandler) UpdateBookingStatus(c *gin.Context) {
	var update scheduling.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	booking, bookings, err := h.Engine.UpdateBookingStatus(c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "bookings": bookings})
}
