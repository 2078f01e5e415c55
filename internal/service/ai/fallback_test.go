package ai

import (
	"context"
	"strings"
	"testing"
)

func TestStaticResponderKeyedReplies(t *testing.T) {
	r := NewStaticResponder()
	ctx := context.Background()

	cases := []struct {
		message string
		want    string
	}{
		{"I've been so sad lately", "feeling really down"},
		{"my anxiety is bad today", "Anxiety can feel overwhelming"},
		{"feeling lonely tonight", "Loneliness can feel so heavy"},
		{"I'm exhausted after work", "body and mind"},
	}
	for _, tc := range cases {
		reply, err := r.Generate(ctx, tc.message)
		if err != nil {
			t.Fatalf("Generate(%q) err: %v", tc.message, err)
		}
		if !strings.Contains(reply, tc.want) {
			t.Fatalf("Generate(%q) = %q, want substring %q", tc.message, reply, tc.want)
		}
	}
}

func TestStaticResponderDefaultRotation(t *testing.T) {
	r := NewStaticResponder()
	ctx := context.Background()

	known := make(map[string]bool, len(defaultReplies))
	for _, reply := range defaultReplies {
		known[reply] = true
	}

	for i := 0; i < 20; i++ {
		reply, err := r.Generate(ctx, "just checking in")
		if err != nil {
			t.Fatalf("Generate err: %v", err)
		}
		if !known[reply] {
			t.Fatalf("unexpected default reply: %q", reply)
		}
	}
}
