// Package llm implements a minimal client for OpenAI-compatible
// chat completion endpoints.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/swarms-world/swarms-cli/internal/config"
	"github.com/swarms-world/swarms-cli/internal/constants"
)

// Message roles accepted by chat completion endpoints.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

const maxResponseBytes = 4 << 20

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// ErrEmptyReply is returned when the endpoint answers without any choices.
var ErrEmptyReply = errors.New("chat reply contains no choices")

// Doer executes a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes one chat completion call.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature *float64
	MaxTokens   int
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	HTTP    Doer
}

// NewFromConfig builds a client from the loaded application configuration.
func NewFromConfig() *Client {
	return &Client{
		BaseURL: config.Current.LLM.BaseURL,
		APIKey:  config.Current.LLM.APIKey,
		Timeout: config.Current.LLM.Timeout,
	}
}

type chatPayload struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatReply struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends a chat completion request and returns the first choice's content.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(chatPayload{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.doer().Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading chat reply: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("chat http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var reply chatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return "", fmt.Errorf("decoding chat reply: %w", err)
	}
	if len(reply.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return reply.Choices[0].Message.Content, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return constants.DefaultLLMBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

func (c *Client) doer() Doer {
	if c.HTTP == nil {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 2
		rc.Logger = nil
		rc.HTTPClient.Timeout = c.timeout()
		c.HTTP = rc.StandardClient()
	}
	return c.HTTP
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return constants.DefaultHTTPClientTimeout
	}
	return c.Timeout
}
