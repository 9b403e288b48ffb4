package chat

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/services/intelligence"
	"pawsitive/store"
	"pawsitive/utils"
)

// Fallback replies. The gateway's failures never reach the visitor;
// one of these is appended instead.
const (
	fallbackUnconfigured = "I'm currently unable to reach our AI assistant. Please leave your message, " +
		"and a team member will get back to you shortly."
	fallbackFailure = "I'm having a little trouble answering right now. Please share your " +
		"details and we'll follow up personally!"
)

// gatewayTimeout bounds the synchronous AI reply call.
const gatewayTimeout = 15 * time.Second

// DefaultChatService implements ChatService over the in-memory chat
// store. Gateway may be nil when no API key is configured.
type DefaultChatService struct {
	Store   *store.ChatStore
	Gateway intelligence.ReplyGateway
	Logger  *zap.Logger
}

// PostVisitorMessage appends a visitor message and, while autopilot is
// on, synchronously appends the assistant's reply. No store lock is
// held while the gateway call is in flight.
func (s *DefaultChatService) PostVisitorMessage(ctx context.Context, visitorID, message string) (Snapshot, error) {
	visitorID = strings.TrimSpace(visitorID)
	message = strings.TrimSpace(message)
	if message == "" {
		return Snapshot{}, utils.ValidationError("Message is required.")
	}
	if visitorID == "" {
		return Snapshot{}, utils.ValidationError("Visitor ID is required.")
	}

	now := utils.Timestamp()
	visitor := s.Store.Append(visitorID, models.RoleVisitor, message, now)

	settings := s.Store.Settings()
	if settings.Autopilot {
		reply := s.aiReply(ctx, message, settings.BusinessContext)
		visitor = s.Store.Append(visitorID, models.RoleAI, reply, utils.Timestamp())
	}

	return s.snapshot(visitor), nil
}

// aiReply asks the gateway for a reply and absorbs every failure into a
// fixed, user-safe fallback. This is the one place an error is
// deliberately never surfaced.
func (s *DefaultChatService) aiReply(ctx context.Context, message, businessContext string) string {
	if s.Gateway == nil {
		return fallbackUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	reply, err := s.Gateway.GetReply(ctx, message, businessContext)
	if err != nil {
		s.Logger.Warn("AI reply failed, using fallback", zap.Error(err))
		return fallbackFailure
	}
	return reply
}

// RespondAsAgent appends a live staff reply. Rejected while autopilot
// is on, since the assistant already answers for the business.
func (s *DefaultChatService) RespondAsAgent(visitorID, message string) (Snapshot, error) {
	if s.Store.Settings().Autopilot {
		return Snapshot{}, utils.ValidationError("Autopilot is enabled. Disable it to send live replies.")
	}
	visitorID = strings.TrimSpace(visitorID)
	message = strings.TrimSpace(message)
	if message == "" {
		return Snapshot{}, utils.ValidationError("Message is required.")
	}
	if visitorID == "" {
		return Snapshot{}, utils.ValidationError("Visitor ID is required.")
	}

	visitor := s.Store.Append(visitorID, models.RoleAgent, message, utils.Timestamp())
	return s.snapshot(visitor), nil
}

// Transcript returns the visitor's current chat state, creating their
// entry on first contact.
func (s *DefaultChatService) Transcript(visitorID string) (Snapshot, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return Snapshot{}, utils.ValidationError("Visitor ID is required.")
	}
	visitor := s.Store.Touch(visitorID, utils.Timestamp())
	return s.snapshot(visitor), nil
}

func (s *DefaultChatService) Settings() models.ChatSettings {
	return s.Store.Settings()
}

func (s *DefaultChatService) UpdateSettings(settings models.ChatSettings) models.ChatSettings {
	settings.BusinessContext = strings.TrimSpace(settings.BusinessContext)
	updated := s.Store.UpdateSettings(settings)
	s.Logger.Info("chat settings updated", zap.Bool("autopilot", updated.Autopilot))
	return updated
}

func (s *DefaultChatService) Conversations() ConversationsView {
	return ConversationsView{
		Autopilot:    s.Store.Settings().Autopilot,
		WaitingCount: s.Store.WaitingCount(),
		Visitors:     s.Store.Conversations(),
	}
}

func (s *DefaultChatService) Status() StatusView {
	return StatusView{
		WaitingCount: s.Store.WaitingCount(),
		Autopilot:    s.Store.Settings().Autopilot,
	}
}

func (s *DefaultChatService) snapshot(visitor models.ChatVisitor) Snapshot {
	return Snapshot{
		Messages:     visitor.Messages,
		Autopilot:    s.Store.Settings().Autopilot,
		VisitorID:    visitor.VisitorID,
		Label:        visitor.Label,
		IsReturning:  visitor.IsReturning,
		WaitingCount: s.Store.WaitingCount(),
	}
}
