package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = "You are a helpful customer support assistant for a dog walking service. " +
	"Use the provided business context to answer clearly and concisely, " +
	"highlighting key services and booking information."

// GeminiGateway is the Gemini-backed ReplyGateway.
type GeminiGateway struct {
	model *genai.GenerativeModel
}

// NewGeminiGateway builds a gateway for the given API key. An empty key
// is an error so callers can fall back to a canned reply instead of
// issuing doomed requests.
func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key not configured")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiGateway{model: model}, nil
}

func (g *GeminiGateway) GetReply(ctx context.Context, message, businessContext string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(systemPrompt)
	prompt.WriteString("\n\nBusiness context:\n")
	prompt.WriteString(strings.TrimSpace(businessContext))
	prompt.WriteString("\n\nVisitor message:\n")
	prompt.WriteString(message)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates returned from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", errors.New("empty reply from gemini")
	}
	return reply, nil
}
