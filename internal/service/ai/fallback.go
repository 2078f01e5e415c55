package ai

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// keyedReply pairs trigger words with a canned supportive reply. Checked in
// order, first hit wins.
type keyedReply struct {
	triggers []string
	reply    string
}

var keyedReplies = []keyedReply{
	{
		triggers: []string{"sad", "depressed"},
		reply:    "I hear that you're feeling really down right now. It's okay to feel sad - your emotions are valid. Sometimes just acknowledging these feelings can be the first step toward healing.",
	},
	{
		triggers: []string{"anxious", "worried", "anxiety"},
		reply:    "Anxiety can feel overwhelming, but you're not alone in this. Take a deep breath with me. What you're experiencing is real, and there are ways to work through these feelings.",
	},
	{
		triggers: []string{"angry", "frustrated"},
		reply:    "It sounds like you're carrying a lot of frustration. Those feelings are completely understandable. Let's take a moment to acknowledge that anger often comes from caring deeply about something.",
	},
	{
		triggers: []string{"lonely", "alone"},
		reply:    "Loneliness can feel so heavy. Thank you for reaching out and sharing with me. Even though it might not feel like it right now, you matter and your feelings are important.",
	},
	{
		triggers: []string{"stressed", "overwhelmed"},
		reply:    "It sounds like you're carrying a lot right now. Feeling overwhelmed is a sign that you care and that you're dealing with real challenges. Let's take this one step at a time.",
	},
	{
		triggers: []string{"happy", "good", "great"},
		reply:    "I'm so glad to hear you're feeling positive! It's wonderful that you're experiencing some joy. These moments of happiness are precious and worth celebrating.",
	},
	{
		triggers: []string{"tired", "exhausted"},
		reply:    "Being tired - whether physically or emotionally - is your body and mind telling you they need care. Rest isn't selfish; it's necessary for your wellbeing.",
	},
	{
		triggers: []string{"confused", "lost"},
		reply:    "Feeling confused or lost can be really unsettling. It's okay not to have all the answers right now. Sometimes clarity comes gradually as we process our experiences.",
	},
}

var defaultReplies = []string{
	"Thank you for sharing that with me. Your feelings matter, and I'm here to listen. What you're experiencing is valid, and you don't have to go through this alone.",
	"I appreciate you opening up about what's on your mind. It takes courage to express your feelings. Remember that seeking support is a sign of strength, not weakness.",
	"I hear you, and I want you to know that your emotions are completely valid. You're doing the best you can with what you're facing right now.",
	"It sounds like you're dealing with a lot. Your willingness to share shows real strength. Take things one moment at a time - you don't have to figure everything out right now.",
	"Your feelings are important and deserve to be heard. Thank you for trusting me with what you're going through. You're braver than you realize.",
}

// StaticResponder serves canned supportive replies when no chat model is
// configured. Safe for concurrent use.
type StaticResponder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStaticResponder seeds the rotation of default replies.
func NewStaticResponder() *StaticResponder {
	return &StaticResponder{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate matches the message against the trigger table and otherwise
// rotates through the default replies. It never fails.
func (r *StaticResponder) Generate(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, entry := range keyedReplies {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				return entry.reply, nil
			}
		}
	}

	r.mu.Lock()
	reply := defaultReplies[r.rng.Intn(len(defaultReplies))]
	r.mu.Unlock()
	return reply, nil
}
