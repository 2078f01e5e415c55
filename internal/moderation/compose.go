package moderation

import "github.com/sanjeevani-app/backend/internal/analysis/crisis"

// Response kinds for composed crisis envelopes.
const (
	KindEmergency = "emergency"
	KindSupport   = "support"
)

const emergencyMessage = "I'm really concerned about you right now. Your safety is the most important thing. " +
	"Please reach out to someone who can help immediately - whether that's emergency services, " +
	"a crisis helpline, or a trusted person in your life."

const supportMessage = "I hear that you're going through a really difficult time. Thank you for sharing with me. " +
	"While I'm here to listen, I want to make sure you have access to professional support " +
	"that can provide the help you deserve."

// CrisisResponse is the envelope attached to a chat turn when the classifier
// found crisis content. The message is fixed copy, never generated.
type CrisisResponse struct {
	Kind            string
	Message         string
	Resources       ResourceBundle
	BypassGenerator bool
}

// ComposeCrisisResponse maps a verdict to its response envelope, or nil when
// the conversation can proceed normally. Severity is trusted as-is from the
// verdict, not re-derived here.
func ComposeCrisisResponse(verdict crisis.Verdict) *CrisisResponse {
	switch verdict.Severity {
	case crisis.SeverityHigh:
		return &CrisisResponse{
			Kind:            KindEmergency,
			Message:         emergencyMessage,
			Resources:       emergencyResources,
			BypassGenerator: true,
		}
	case crisis.SeverityMedium:
		return &CrisisResponse{
			Kind:            KindSupport,
			Message:         supportMessage,
			Resources:       supportResources,
			BypassGenerator: false,
		}
	default:
		return nil
	}
}
