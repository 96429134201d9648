// Package genai wraps the OpenAI chat completion API behind a small client
// used for persona-driven replies.
package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

// ErrNoChoices is returned when the API answers without a completion choice.
var ErrNoChoices = errors.New("no choices returned")

// chatService defines the minimal surface of the OpenAI chat client.
type chatService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client wraps the OpenAI chat completion service.
type Client struct {
	chat  chatService
	model openai.ChatModel
}

// Option customises a Client.
type Option func(*Client)

// WithModel overrides the default chat model.
func WithModel(model openai.ChatModel) Option {
	return func(c *Client) { c.model = model }
}

// NewClient builds a client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	cli := openai.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		chat:  &cli.Chat.Completions,
		model: openai.ChatModelGPT4oMini,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete sends one system+user exchange and returns the reply text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	resp, err := c.chat.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: param.NewOpt(temperature),
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// IsRateLimited reports whether err signals the API quota being exceeded.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return strings.Contains(err.Error(), "429")
}
