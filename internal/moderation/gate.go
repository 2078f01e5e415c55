package moderation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sanjeevani-app/backend/internal/analysis/crisis"
)

// MaxPostLength bounds community wall messages, measured after trimming.
const MaxPostLength = 500

// Decision is the gate's verdict on a community post. Reason and Suggestion
// are user-facing copy, only set when the post is rejected.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// inappropriatePatterns flags spam, solicitation, and contact-sharing signals.
var inappropriatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)spam`),
	regexp.MustCompile(`(?i)advertisement`),
	regexp.MustCompile(`(?i)buy now`),
	regexp.MustCompile(`(?i)click here`),
	regexp.MustCompile(`(?i)www\.`),
	regexp.MustCompile(`(?i)http`),
	regexp.MustCompile(`(?i)\.com`),
	regexp.MustCompile(`(?i)personal information`),
	regexp.MustCompile(`(?i)phone number`),
	regexp.MustCompile(`(?i)address`),
	regexp.MustCompile(`(?i)meet me`),
	regexp.MustCompile(`(?i)location`),
}

// Gate decides whether a message may appear on the public community wall.
type Gate struct {
	detector crisis.Detector
}

// NewGate builds a gate around the supplied crisis detector.
func NewGate(detector crisis.Detector) *Gate {
	return &Gate{detector: detector}
}

// Evaluate runs the moderation rules in order; the first failing rule decides
// the reason. Pure and total: any string input yields a Decision, never a
// panic. Empty-message validation belongs to the caller, not the gate.
func (g *Gate) Evaluate(text string) Decision {
	// Crisis content belongs in private chat, not on a public wall.
	if g.detector.Detect(text).HasCrisisContent {
		return Decision{
			Reason:     "Crisis content should be handled privately through chat",
			Suggestion: "Please use the private chat feature for personal support",
		}
	}

	for _, pattern := range inappropriatePatterns {
		if pattern.MatchString(text) {
			return Decision{
				Reason:     "Contains potentially inappropriate content",
				Suggestion: "Please keep posts supportive and relevant to mental health",
			}
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) > MaxPostLength {
		return Decision{
			Reason:     "Message too long",
			Suggestion: "Please keep community posts under 500 characters",
		}
	}

	return Decision{Allowed: true}
}
