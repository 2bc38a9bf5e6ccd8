// Package llm talks to OpenAI-compatible chat completion endpoints. Both the
// summary (OpenAI) and related-news (Perplexity) collaborators use it.
package llm

import (
	"context"
	"net/http"
	"strings"

	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/upstream"
	"github.com/pkg/errors"
)

// ErrEmptyContent is returned when the completion carries no message text.
var ErrEmptyContent = errors.New("empty completion content")

// Message mirrors the OpenAI chat message structure.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func System(content string) Message { return Message{Role: "system", Content: content} }
func User(content string) Message   { return Message{Role: "user", Content: content} }

type ResponseFormat struct {
	Type string `json:"type"`
}

// Request is the payload sent to /chat/completions.
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Completer is the narrow view the services depend on.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *upstream.Client
}

// NewClient builds a client from cfg. The API key must be set.
func NewClient(cfg config.LLMConfig, opts ...upstream.Option) (*Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("llm api key cannot be empty")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = config.DefaultOpenAIURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   cfg.Model,
		http:    upstream.NewClient(cfg.Timeout, opts...),
	}, nil
}

// Complete sends req and returns the first choice's message content.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)

	var out response
	if err := c.http.PostJSON(ctx, c.baseURL+"/chat/completions", headers, req, &out); err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyContent
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
