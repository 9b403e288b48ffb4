package models

// Chat message roles.
const (
	RoleVisitor = "visitor"
	RoleAgent   = "agent"
	RoleAI      = "ai"
)

// ChatMessage is one entry in a visitor's transcript.
type ChatMessage struct {
	Role      string `json:"role"`      // visitor, agent or ai
	Content   string `json:"content"`   // Message text
	Timestamp string `json:"timestamp"` // Timestamp when the message was appended
}

// ChatVisitor holds one visitor's transcript and presence data.
type ChatVisitor struct {
	VisitorID   string        `json:"visitor_id"`   // Client-supplied identifier
	Label       string        `json:"label"`        // Short display label derived from the identifier
	Messages    []ChatMessage `json:"messages"`     // Append-only transcript, capped at 200
	CreatedAt   string        `json:"created_at"`   // Timestamp when first seen in chat
	LastSeen    string        `json:"last_seen"`    // Timestamp of the latest chat activity
	IsReturning bool          `json:"is_returning"` // True once the visitor has posted more than once
}

// ChatSettings are the global assistant controls.
type ChatSettings struct {
	Autopilot       bool   `json:"autopilot"`        // When on, visitor messages get an immediate AI reply
	BusinessContext string `json:"business_context"` // Free text fed to the assistant
}

// ConversationSummary is the admin-facing projection of one transcript.
type ConversationSummary struct {
	VisitorID    string       `json:"visitor_id"`
	Label        string       `json:"label"`
	LastSeen     string       `json:"last_seen"`
	MessageCount int          `json:"message_count"`
	Waiting      bool         `json:"waiting"`
	IsReturning  bool         `json:"is_returning"`
	LastMessage  *ChatMessage `json:"last_message"`
}
