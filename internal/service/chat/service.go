package chat

import (
	"context"
	"log"
	"time"

	"github.com/sanjeevani-app/backend/internal/analysis/crisis"
	"github.com/sanjeevani-app/backend/internal/moderation"
)

// Responder generates one companion reply for a user message. Implementations
// may call out to a hosted model; the orchestrator bounds the call with a
// timeout and degrades to fixed copy on failure.
type Responder interface {
	Generate(ctx context.Context, message string) (string, error)
}

// DefaultResponderTimeout bounds a single generation call.
const DefaultResponderTimeout = 30 * time.Second

// fallbackReply is served when the responder fails or times out. A chat turn
// always produces a user-visible response.
const fallbackReply = "I'm having trouble responding right now. Please try again."

// TurnResult is the outcome of one chat turn.
type TurnResult struct {
	Response  string
	Crisis    bool
	Emergency bool
	Degraded  bool
	Resources *moderation.ResourceBundle
}

// Service orchestrates a chat turn: classification first, then either the
// fixed crisis path or the generative responder.
type Service struct {
	detector  crisis.Detector
	responder Responder
	timeout   time.Duration
}

// NewService wires the orchestrator. A non-positive timeout falls back to
// DefaultResponderTimeout.
func NewService(detector crisis.Detector, responder Responder, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultResponderTimeout
	}
	return &Service{detector: detector, responder: responder, timeout: timeout}
}

// HandleTurn classifies the message and produces the reply. Emergencies
// short-circuit before the responder is ever called; everything else goes
// through it, with crisis-support copy prepended when the verdict warrants.
func (s *Service) HandleTurn(ctx context.Context, message string) TurnResult {
	verdict := s.detector.Detect(message)
	envelope := moderation.ComposeCrisisResponse(verdict)

	if envelope != nil && envelope.BypassGenerator {
		log.Printf("[chat] emergency content detected, bypassing generator")
		resources := envelope.Resources
		return TurnResult{
			Response:  envelope.Message,
			Crisis:    true,
			Emergency: true,
			Resources: &resources,
		}
	}

	reply, degraded := s.generate(ctx, message)

	if envelope != nil {
		resources := envelope.Resources
		return TurnResult{
			Response:  envelope.Message + "\n\n" + reply,
			Crisis:    true,
			Degraded:  degraded,
			Resources: &resources,
		}
	}

	return TurnResult{Response: reply, Degraded: degraded}
}

func (s *Service) generate(ctx context.Context, message string) (reply string, degraded bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.responder.Generate(ctx, message)
	if err != nil {
		log.Printf("[chat] responder failed, serving fallback reply: %v", err)
		return fallbackReply, true
	}
	return reply, false
}
