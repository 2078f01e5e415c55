package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/sanjeevani-app/backend/internal/config"
)

const companionPrompt = `You are a compassionate mental health companion named Sanjeevani. You provide supportive, empathetic responses to help people process their feelings. Keep responses:
- Warm and understanding
- Encouraging but not dismissive
- 2-3 sentences maximum
- Focused on validation and gentle guidance
- Never provide medical advice
- Suggest professional help when appropriate
- Be culturally sensitive
- Maintain hope and positivity`

// Service generates companion replies through the configured chat model.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt-template chain once at startup.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile companion chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Generate produces one companion reply for the user's message.
func (s *Service) Generate(ctx context.Context, message string) (string, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{
		"system": companionPrompt,
		"query":  message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run companion chain: %w", err)
	}

	log.Printf("[ai] generated reply, length=%d", len(response.Content))
	return strings.TrimSpace(response.Content), nil
}
