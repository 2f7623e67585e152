package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/llm"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
)

// FallbackMessage is shown when the AI cannot be reached mid-chat.
const FallbackMessage = "Sorry, I couldn't reach mission control. Please try again."

// SummaryFallback is shown on the stats screen when summary generation fails.
const SummaryFallback = "Your mission log is safe, but the AI summary is unavailable right now."

// ChatMessage is one turn in a chat with the assistant.
type ChatMessage struct {
	Role    llm.Role
	Content string
}

// Assistant answers study questions and writes performance summaries.
type Assistant struct {
	provider llm.Provider
	cfg      Config
}

// Config bounds assistant generations.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the assistant generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// New creates an assistant backed by the given provider.
func New(provider llm.Provider, cfg Config) *Assistant {
	return &Assistant{provider: provider, cfg: cfg}
}

// Chat streams an answer to the student's prompt. History is the prior
// conversation; placeholder assistant messages left empty by a streaming
// UI are dropped before sending. The module, when non-nil, anchors the
// answer to what the student is studying.
func (a *Assistant) Chat(
	ctx context.Context,
	prompt string,
	history []ChatMessage,
	module *galaxy.CelestialBody,
	fn func(chunk string) error,
) error {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	messages := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		if m.Role == llm.RoleAssistant && strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: buildChatContext(module, prompt),
	})

	req := llm.Request{
		System:      chatSystemPrompt,
		Messages:    messages,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	_, err := a.provider.GenerateStream(ctx, req, fn)
	if err != nil {
		return fmt.Errorf("chat generation: %w", err)
	}
	return nil
}

// PerformanceSummary produces a short motivational recap of the recorded
// session scores, in the requested language.
func (a *Assistant) PerformanceSummary(
	ctx context.Context,
	records []performance.Record,
	language string,
) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSummary)

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(records, language)},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summary generation: %w", err)
	}

	return strings.TrimSpace(string(resp.Content)), nil
}
