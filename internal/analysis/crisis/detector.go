package crisis

import "strings"

// Severity ranks how urgently a message needs intervention.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Verdict is the classification result for a single message.
type Verdict struct {
	HasCrisisContent bool
	IsEmergency      bool
	Keywords         []string
	Severity         Severity
}

// Detector classifies free text for crisis content. The matching strategy is
// behind an interface so it can be swapped without touching callers.
type Detector interface {
	Detect(text string) Verdict
}

// crisisKeywords is checked in declaration order; Verdict.Keywords preserves it.
var crisisKeywords = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"self harm", "self-harm", "hurt myself", "cutting", "overdose",
	"panic attack", "panic", "anxiety attack", "anxious", "can't breathe",
	"hopeless", "worthless", "nobody cares", "better off dead",
	"abuse", "domestic violence", "being hurt", "unsafe",
	"crisis", "emergency", "help me", "desperate",
}

// emergencyKeywords must stay a subset of crisisKeywords so that an emergency
// verdict always implies crisis content.
var emergencyKeywords = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"overdose", "self harm", "cutting", "hurt myself",
}

// KeywordDetector matches by case-insensitive substring containment. No
// stemming, no negation handling: over-triggering support messaging is
// preferred over missing a signal, so "crisis averted" still counts as a hit.
type KeywordDetector struct {
	crisis    []string
	emergency []string
}

// NewKeywordDetector returns a detector loaded with the default keyword sets.
func NewKeywordDetector() *KeywordDetector {
	return &KeywordDetector{crisis: crisisKeywords, emergency: emergencyKeywords}
}

// Detect classifies the message. It is pure and safe for concurrent use.
func (d *KeywordDetector) Detect(text string) Verdict {
	normalized := strings.ToLower(text)

	var matched []string
	for _, keyword := range d.crisis {
		if strings.Contains(normalized, keyword) {
			matched = append(matched, keyword)
		}
	}

	isEmergency := false
	for _, keyword := range d.emergency {
		if strings.Contains(normalized, keyword) {
			isEmergency = true
			break
		}
	}

	verdict := Verdict{
		HasCrisisContent: len(matched) > 0,
		IsEmergency:      isEmergency,
		Keywords:         matched,
		Severity:         SeverityLow,
	}
	switch {
	case isEmergency:
		verdict.Severity = SeverityHigh
	case len(matched) > 0:
		verdict.Severity = SeverityMedium
	}
	return verdict
}
