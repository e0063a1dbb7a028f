// Package llm generates an optional one-paragraph intro for the digest
// email. It runs after selection and rendering inputs are fixed and
// never influences filtering, deduplication, or scoring; a failure here
// only means the digest ships without an intro.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ewagner/oppscout/internal/model"
)

const systemPrompt = `You write the two-sentence intro for a biweekly email digest of
journalism and nonfiction writing fellowships and grants. Mention only
opportunities named in the list you are given. Plain prose, no greetings,
no markdown, no invented details.`

// Summarizer produces digest intros through an OpenAI-compatible API.
type Summarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer creates a Summarizer, or nil when disabled/unconfigured.
func NewSummarizer(cfg model.LLMConfig) *Summarizer {
	if !cfg.Enabled || cfg.APIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Intro generates the digest intro from the selected opportunities.
func (s *Summarizer) Intro(ctx context.Context, closing, fresh []model.Opportunity) (string, error) {
	var b strings.Builder
	b.WriteString("Closing soon:\n")
	for _, o := range closing {
		fmt.Fprintf(&b, "- %s (%s, deadline %s)\n", o.Title, o.Source, o.Deadline)
	}
	b.WriteString("New this cycle:\n")
	for _, o := range fresh {
		fmt.Fprintf(&b, "- %s (%s)\n", o.Title, o.Source)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
