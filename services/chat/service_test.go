package chat

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

type fakeGateway struct {
	reply string
	err   error

	gotMessage string
	gotContext string
}

func (g *fakeGateway) GetReply(_ context.Context, message, businessContext string) (string, error) {
	g.gotMessage = message
	g.gotContext = businessContext
	return g.reply, g.err
}

func newTestService(gateway *fakeGateway) *DefaultChatService {
	svc := &DefaultChatService{
		Store:  store.NewChatStore(),
		Logger: zap.NewNop(),
	}
	if gateway != nil {
		svc.Gateway = gateway
	}
	return svc
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPostVisitorMessage_Validation(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.PostVisitorMessage(context.Background(), "v1", "   ")
	requireValidation(t, err)

	_, err = svc.PostVisitorMessage(context.Background(), "", "hello")
	requireValidation(t, err)
}

func TestPostVisitorMessage_AutopilotReply(t *testing.T) {
	gateway := &fakeGateway{reply: "We walk dogs every weekday!"}
	svc := newTestService(gateway)
	svc.UpdateSettings(models.ChatSettings{Autopilot: true, BusinessContext: "We cover the whole of Leeds."})

	snapshot, err := svc.PostVisitorMessage(context.Background(), "v1", "do you walk dogs?")
	if err != nil {
		t.Fatalf("PostVisitorMessage failed: %v", err)
	}
	if len(snapshot.Messages) != 2 {
		t.Fatalf("expected visitor message plus AI reply, got %d messages", len(snapshot.Messages))
	}
	last := snapshot.Messages[1]
	if last.Role != models.RoleAI || last.Content != gateway.reply {
		t.Fatalf("unexpected AI message: %+v", last)
	}
	if gateway.gotMessage != "do you walk dogs?" {
		t.Fatalf("gateway not given the visitor message: %q", gateway.gotMessage)
	}
	if gateway.gotContext != "We cover the whole of Leeds." {
		t.Fatalf("gateway not given the business context: %q", gateway.gotContext)
	}
	if snapshot.WaitingCount != 0 {
		t.Fatalf("autopilot answered, nobody should wait")
	}
}

func TestPostVisitorMessage_GatewayFailureUsesFallback(t *testing.T) {
	svc := newTestService(&fakeGateway{err: errors.New("quota exhausted")})

	snapshot, err := svc.PostVisitorMessage(context.Background(), "v1", "hello?")
	if err != nil {
		t.Fatalf("gateway failures must not surface: %v", err)
	}
	last := snapshot.Messages[len(snapshot.Messages)-1]
	if last.Role != models.RoleAI || last.Content != fallbackFailure {
		t.Fatalf("expected failure fallback, got %+v", last)
	}
}

func TestPostVisitorMessage_NoGatewayUsesFallback(t *testing.T) {
	svc := newTestService(nil)

	snapshot, err := svc.PostVisitorMessage(context.Background(), "v1", "hello?")
	if err != nil {
		t.Fatalf("PostVisitorMessage failed: %v", err)
	}
	last := snapshot.Messages[len(snapshot.Messages)-1]
	if last.Content != fallbackUnconfigured {
		t.Fatalf("expected unconfigured fallback, got %q", last.Content)
	}
}

func TestPostVisitorMessage_AutopilotOffQueuesForStaff(t *testing.T) {
	gateway := &fakeGateway{reply: "should not be used"}
	svc := newTestService(gateway)
	svc.UpdateSettings(models.ChatSettings{Autopilot: false})

	snapshot, err := svc.PostVisitorMessage(context.Background(), "v1", "is anyone there?")
	if err != nil {
		t.Fatalf("PostVisitorMessage failed: %v", err)
	}
	if len(snapshot.Messages) != 1 {
		t.Fatalf("no AI reply expected with autopilot off, got %d messages", len(snapshot.Messages))
	}
	if gateway.gotMessage != "" {
		t.Fatalf("gateway must not be called with autopilot off")
	}
	if snapshot.WaitingCount != 1 {
		t.Fatalf("expected 1 waiting visitor, got %d", snapshot.WaitingCount)
	}
}

func TestRespondAsAgent(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.RespondAsAgent("v1", "hello from staff")
	requireValidation(t, err)

	svc.UpdateSettings(models.ChatSettings{Autopilot: false})
	if _, err := svc.PostVisitorMessage(context.Background(), "v1", "help please"); err != nil {
		t.Fatalf("PostVisitorMessage failed: %v", err)
	}

	snapshot, err := svc.RespondAsAgent("v1", "hello from staff")
	if err != nil {
		t.Fatalf("RespondAsAgent failed: %v", err)
	}
	last := snapshot.Messages[len(snapshot.Messages)-1]
	if last.Role != models.RoleAgent {
		t.Fatalf("expected agent message, got %+v", last)
	}
	if snapshot.WaitingCount != 0 {
		t.Fatalf("agent reply should clear the waiting state")
	}
}

func TestTranscript_CreatesVisitorEntry(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Transcript("")
	requireValidation(t, err)

	snapshot, err := svc.Transcript("abcdef123456")
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if snapshot.VisitorID != "abcdef123456" || snapshot.Label != "123456" {
		t.Fatalf("unexpected snapshot identity: %+v", snapshot)
	}
	if len(snapshot.Messages) != 0 {
		t.Fatalf("fresh transcript should be empty")
	}
	if !snapshot.Autopilot {
		t.Fatalf("autopilot defaults on")
	}
}
