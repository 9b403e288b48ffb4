// Package intelligence wraps the external chat-completion collaborator.
package intelligence

import "context"

// ReplyGateway produces assistant replies for visitor chat messages.
// Implementations must be time-bounded via ctx and return an error on
// any failure; choosing a fallback string is the caller's decision.
type ReplyGateway interface {
	GetReply(ctx context.Context, message, businessContext string) (string, error)
}
