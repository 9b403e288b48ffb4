package store

import (
	"sort"
	"strings"
	"sync"

	"pawsitive/models"
)

// maxMessages caps each transcript; capping drops the oldest entries.
const maxMessages = 200

// labelLength is how many trailing identifier characters make up the
// display label.
const labelLength = 6

// ChatStore holds every visitor transcript plus the global assistant
// settings. Waiting state is derived, never stored: a visitor is
// waiting while autopilot is off and their latest message is theirs.
type ChatStore struct {
	mu       sync.RWMutex
	visitors map[string]*models.ChatVisitor
	settings models.ChatSettings
}

// NewChatStore returns an empty chat store with autopilot enabled.
func NewChatStore() *ChatStore {
	return &ChatStore{
		visitors: make(map[string]*models.ChatVisitor),
		settings: models.ChatSettings{Autopilot: true},
	}
}

func visitorLabel(visitorID string) string {
	if len(visitorID) <= labelLength {
		return strings.ToUpper(visitorID)
	}
	return strings.ToUpper(visitorID[len(visitorID)-labelLength:])
}

// getOrCreate must be called with the lock held.
func (s *ChatStore) getOrCreate(visitorID, now string) *models.ChatVisitor {
	visitor, ok := s.visitors[visitorID]
	if !ok {
		visitor = &models.ChatVisitor{
			VisitorID: visitorID,
			Label:     visitorLabel(visitorID),
			CreatedAt: now,
			LastSeen:  now,
		}
		s.visitors[visitorID] = visitor
	} else {
		visitor.LastSeen = now
	}
	return visitor
}

// Touch upserts the visitor entry and returns a copy of it.
func (s *ChatStore) Touch(visitorID, now string) models.ChatVisitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyChatVisitor(s.getOrCreate(visitorID, now))
}

// Append adds a message to the visitor's transcript, creating the entry
// if needed. A visitor posting onto a non-empty transcript is marked
// returning. Transcripts are capped at maxMessages, dropping oldest.
func (s *ChatStore) Append(visitorID, role, content, now string) models.ChatVisitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	visitor := s.getOrCreate(visitorID, now)
	if role == models.RoleVisitor && len(visitor.Messages) > 0 {
		visitor.IsReturning = true
	}
	visitor.Messages = append(visitor.Messages, models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	if len(visitor.Messages) > maxMessages {
		visitor.Messages = visitor.Messages[len(visitor.Messages)-maxMessages:]
	}
	visitor.LastSeen = now
	return copyChatVisitor(visitor)
}

// Visitor returns a copy of the transcript entry for visitorID.
func (s *ChatStore) Visitor(visitorID string) (models.ChatVisitor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visitor, ok := s.visitors[visitorID]
	if !ok {
		return models.ChatVisitor{}, false
	}
	return copyChatVisitor(visitor), true
}

// Settings returns the current global assistant settings.
func (s *ChatStore) Settings() models.ChatSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the global assistant settings.
func (s *ChatStore) UpdateSettings(settings models.ChatSettings) models.ChatSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}

// waiting must be called with the lock held.
func (s *ChatStore) waiting(visitor *models.ChatVisitor) bool {
	if s.settings.Autopilot {
		return false
	}
	n := len(visitor.Messages)
	return n > 0 && visitor.Messages[n-1].Role == models.RoleVisitor
}

// WaitingCount reports how many visitors await a live reply.
func (s *ChatStore) WaitingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, visitor := range s.visitors {
		if s.waiting(visitor) {
			count++
		}
	}
	return count
}

// Conversations projects every transcript into its admin summary,
// sorted by last-seen descending.
func (s *ChatStore) Conversations() []models.ConversationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ConversationSummary, 0, len(s.visitors))
	for _, visitor := range s.visitors {
		summary := models.ConversationSummary{
			VisitorID:    visitor.VisitorID,
			Label:        visitor.Label,
			LastSeen:     visitor.LastSeen,
			MessageCount: len(visitor.Messages),
			Waiting:      s.waiting(visitor),
			IsReturning:  visitor.IsReturning,
		}
		if n := len(visitor.Messages); n > 0 {
			last := visitor.Messages[n-1]
			summary.LastMessage = &last
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastSeen != out[j].LastSeen {
			return out[i].LastSeen > out[j].LastSeen
		}
		return out[i].VisitorID < out[j].VisitorID
	})
	return out
}

func copyChatVisitor(visitor *models.ChatVisitor) models.ChatVisitor {
	copied := *visitor
	copied.Messages = append([]models.ChatMessage(nil), visitor.Messages...)
	return copied
}
