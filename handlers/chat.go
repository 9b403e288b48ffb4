package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/services/chat"
	"pawsitive/utils"
)

// ChatHandler exposes the visitor chat and its admin controls.
type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

func NewChatHandler(service chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: service, Logger: logger}
}

type chatMessageInput struct {
	Message   string `json:"message"`
	VisitorID string `json:"visitor_id"`
}

// GetMessages handles GET /api/chat/messages?visitor_id=.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	snapshot, err := h.Service.Transcript(c.Query("visitor_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// PostMessage handles POST /api/chat.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var input chatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	snapshot, err := h.Service.PostVisitorMessage(c.Request.Context(), input.VisitorID, input.Message)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// Respond handles POST /api/chat/respond (live agent reply).
func (h *ChatHandler) Respond(c *gin.Context) {
	var input chatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	snapshot, err := h.Service.RespondAsAgent(input.VisitorID, input.Message)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Status handles GET /api/chat/status.
func (h *ChatHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Status())
}

// GetSettings handles GET /api/admin/chat-settings.
func (h *ChatHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Settings())
}

// UpdateSettings handles POST /api/admin/chat-settings.
func (h *ChatHandler) UpdateSettings(c *gin.Context) {
	var settings models.ChatSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	c.JSON(http.StatusOK, h.Service.UpdateSettings(settings))
}

// Conversations handles GET /api/admin/conversations.
func (h *ChatHandler) Conversations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Conversations())
}
