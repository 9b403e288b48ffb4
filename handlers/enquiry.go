package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawsitive/services/enquiries"
	"pawsitive/utils"
)

// EnquiryHandler exposes the contact-form endpoints.
type EnquiryHandler struct {
	Service *enquiries.DefaultEnquiryService
	Logger  *zap.Logger
}

func NewEnquiryHandler(service *enquiries.DefaultEnquiryService, logger *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{Service: service, Logger: logger}
}

// Submit handles POST /api/enquiries.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var input enquiries.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	enquiry, err := h.Service.Submit(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"enquiry": enquiry})
}

// List handles GET /api/admin/enquiries.
func (h *EnquiryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enquiries": h.Service.List()})
}

// Update handles PATCH /api/admin/enquiries/:id.
func (h *EnquiryHandler) Update(c *gin.Context) {
	var update enquiries.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	enquiry, err := h.Service.UpdateEnquiry(c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiry": enquiry})
}

// Delete handles DELETE /api/admin/enquiries/:id.
func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}
