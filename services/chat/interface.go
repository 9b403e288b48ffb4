package chat

import (
	"context"

	"pawsitive/models"
)

// Snapshot is the chat state returned to a visitor after any chat
// operation: their transcript plus the global assistant state.
type Snapshot struct {
	Messages     []models.ChatMessage `json:"messages"`
	Autopilot    bool                 `json:"autopilot"`
	VisitorID    string               `json:"visitor_id"`
	Label        string               `json:"label"`
	IsReturning  bool                 `json:"is_returning"`
	WaitingCount int                  `json:"waiting_count"`
}

// ConversationsView is the admin projection of every transcript.
type ConversationsView struct {
	Autopilot    bool                         `json:"autopilot"`
	WaitingCount int                          `json:"waiting_count"`
	Visitors     []models.ConversationSummary `json:"visitors"`
}

// StatusView is the lightweight polling payload.
type StatusView struct {
	WaitingCount int  `json:"waiting_count"`
	Autopilot    bool `json:"autopilot"`
}

// ChatService owns visitor transcripts, the autopilot toggle and the
// handoff to the AI reply gateway.
type ChatService interface {
	PostVisitorMessage(ctx context.Context, visitorID, message string) (Snapshot, error)
	RespondAsAgent(visitorID, message string) (Snapshot, error)
	Transcript(visitorID string) (Snapshot, error)
	Settings() models.ChatSettings
	UpdateSettings(settings models.ChatSettings) models.ChatSettings
	Conversations() ConversationsView
	Status() StatusView
}
