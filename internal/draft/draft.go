// Package draft turns a short topic into note text via an LLM backend.
package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
)

const systemPrompt = "You draft short personal notes and reminders. " +
	"Write plain text only, no markdown headers, no preamble. " +
	"Keep the tone matching what the user asked for."

// Params describes what to draft.
type Params struct {
	Topic  string
	Tone   string
	Points []string
}

// Generator produces draft text for the drafts view.
type Generator interface {
	Generate(ctx context.Context, p Params) (string, error)
}

// DeepSeekGenerator implements Generator against the DeepSeek chat API.
type DeepSeekGenerator struct {
	client    deepseek.Client
	model     string
	maxTokens int
}

func NewDeepSeekGenerator(apiKey, model string, maxTokens int) (*DeepSeekGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("draft: api key is required")
	}

	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("draft: create client: %w", err)
	}

	return &DeepSeekGenerator{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (g *DeepSeekGenerator) Generate(ctx context.Context, p Params) (string, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return "", fmt.Errorf("draft: topic is required")
	}

	chatReq := &request.ChatCompletionsRequest{
		Model: g.model,
		Messages: []*request.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(p)},
		},
		MaxTokens: g.maxTokens,
		Stream:    false,
	}

	resp, err := g.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("draft: chat request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("draft: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(p Params) string {
	var b strings.Builder
	b.WriteString("Draft a note about: ")
	b.WriteString(p.Topic)

	if p.Tone != "" {
		b.WriteString("\nTone: ")
		b.WriteString(p.Tone)
	}

	if len(p.Points) > 0 {
		b.WriteString("\nCover these points:")
		for _, pt := range p.Points {
			b.WriteString("\n- ")
			b.WriteString(pt)
		}
	}

	return b.String()
}
