package moderation

import (
	"strings"
	"testing"

	"github.com/sanjeevani-app/backend/internal/analysis/crisis"
)

func newTestGate() *Gate {
	return NewGate(crisis.NewKeywordDetector())
}

func TestGateRejectsCrisisContent(t *testing.T) {
	decision := newTestGate().Evaluate("I feel so hopeless today")

	if decision.Allowed {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(decision.Reason, "Crisis content") {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
	if decision.Suggestion == "" {
		t.Fatal("rejection must carry a suggestion")
	}
}

func TestGateRejectsInappropriateContent(t *testing.T) {
	cases := []string{
		"buy now while supplies last",
		"check www.example.org for deals",
		"here is my phone number, call me",
		"meet me behind the school",
	}
	for _, text := range cases {
		decision := newTestGate().Evaluate(text)
		if decision.Allowed {
			t.Fatalf("expected rejection for %q", text)
		}
		if decision.Reason != "Contains potentially inappropriate content" {
			t.Fatalf("unexpected reason for %q: %q", text, decision.Reason)
		}
	}
}

func TestGateRejectsLongMessages(t *testing.T) {
	decision := newTestGate().Evaluate(strings.Repeat("a", MaxPostLength+1))

	if decision.Allowed {
		t.Fatal("expected rejection")
	}
	if decision.Reason != "Message too long" {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
}

func TestGateLengthMeasuredAfterTrimming(t *testing.T) {
	padded := strings.Repeat(" ", 50) + strings.Repeat("a", MaxPostLength) + strings.Repeat(" ", 50)
	if decision := newTestGate().Evaluate(padded); !decision.Allowed {
		t.Fatalf("trimmed message at the limit should pass, got %q", decision.Reason)
	}
}

func TestGateCrisisReasonWinsOverLength(t *testing.T) {
	long := "I feel hopeless " + strings.Repeat("and tired ", 60)
	decision := newTestGate().Evaluate(long)

	if decision.Allowed {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(decision.Reason, "Crisis content") {
		t.Fatalf("crisis rule must precede length rule, got %q", decision.Reason)
	}
}

func TestGateAllowsSupportiveMessage(t *testing.T) {
	decision := newTestGate().Evaluate("Sending good vibes to everyone tonight")

	if !decision.Allowed {
		t.Fatalf("expected allow, got %q", decision.Reason)
	}
	if decision.Reason != "" || decision.Suggestion != "" {
		t.Fatalf("allowed decision must carry no copy: %+v", decision)
	}
}

func TestGateTotalOnAnyInput(t *testing.T) {
	for _, text := range []string{"", " ", "\x00\xff", strings.Repeat("字", 600)} {
		_ = newTestGate().Evaluate(text)
	}
}
