// Package openai answers questions through the OpenAI chat-completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ai-vision/internal/infra"
)

const systemPrompt = "You are a helpful assistant. Based on the provided text from the user's screen " +
	"and their question, provide a clear and concise answer. If the screen text is empty or " +
	"irrelevant, answer the user's question to the best of your ability."

// noScreenText stands in for the screen context when OCR found nothing.
const noScreenText = "No text was detected on the screen."

// Client sends a single-turn chat completion carrying the screen context and
// the spoken question.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func NewClient(apiKey, model string, maxTokens int, temperature float32, timeout time.Duration) *Client {
	return NewClientWithBaseURL(apiKey, model, maxTokens, temperature, timeout, "")
}

func NewClientWithBaseURL(apiKey, model string, maxTokens int, temperature float32, timeout time.Duration, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
	}
}

func (c *Client) Answer(ctx context.Context, screenText, question string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(screenText, question)},
		},
	}

	var resp openai.ChatCompletionResponse
	retryErr := infra.WithRetry(ctx, infra.DefaultRetryConfig(), func() error {
		var err error
		resp, err = c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			var apiErr *openai.APIError
			if errors.As(err, &apiErr) && !infra.IsRetryableHTTPStatus(apiErr.HTTPStatusCode) {
				return err
			}
			return fmt.Errorf("chat completion: %w", err)
		}
		return nil
	})
	if retryErr != nil {
		return "", retryErr
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(screenText, question string) string {
	screenContext := strings.TrimSpace(screenText)
	if screenContext == "" {
		screenContext = noScreenText
	}

	return fmt.Sprintf(`CONTEXT FROM SCREEN:
---
%s
---
USER'S QUESTION: %q`, screenContext, question)
}
