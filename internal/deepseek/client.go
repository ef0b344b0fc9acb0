// Package deepseek wraps DeepSeek's OpenAI-compatible chat API behind the
// single call the pipeline needs.
package deepseek

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "你是一位中文语言学家"

	// Generation settings tuned for deterministic, complete batch replies.
	temperature = 0.3
	maxTokens   = 10000
)

// Client submits classification prompts to DeepSeek.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a client for the given credentials. baseURL normally points at
// https://api.deepseek.com; tests point it at a local server.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Submit sends one prompt and returns the raw reply text. Failures are
// transient from the caller's point of view; the retry policy around this
// call decides when to give up.
func (c *Client) Submit(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("deepseek returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
