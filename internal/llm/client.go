// Package llm is the client for the external chat-completion service.
// The service is treated as an opaque text-completion backend: one
// system instruction, one user prompt, one text answer. Model choice
// and endpoint are configuration, not logic.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the Grok / x.ai chat completions endpoint.
	DefaultEndpoint = "https://api.x.ai/v1/chat/completions"

	// DefaultModel is used when no model override is configured.
	DefaultModel = "grok-beta"

	// DefaultTimeout bounds a single completion round trip.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens is the fallback output budget.
	DefaultMaxTokens = 1024
)

// ErrMissingCredential is returned when no API key is configured.
// Generation features must surface this and not proceed; the rest of
// the workflow stays usable.
var ErrMissingCredential = errors.New("llm: no API key configured")

// UpstreamError is a non-success response from the completion service.
// The body is reported verbatim. Callers treat it as terminal for the
// single invocation; retries are deliberate operator actions.
// StatusCode 0 means the request never completed (transport failure or
// timeout).
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("llm: request failed: %s", e.Body)
	}
	return fmt.Sprintf("llm: API error %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError is a success response without the expected
// text field. RawBody lets the caller show what actually came back
// instead of losing the call's effect.
type MalformedResponseError struct {
	RawBody string
}

func (e *MalformedResponseError) Error() string {
	return "llm: response has no completion text"
}

// HTTPClient is the subset of http.Client the client needs (enables
// test injection).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	Endpoint string        // completion endpoint URL (default: DefaultEndpoint)
	APIKey   string        // bearer credential; may be empty (generation disabled)
	Model    string        // model identifier (default: DefaultModel)
	Timeout  time.Duration // per-call timeout (default: DefaultTimeout)
}

// Request is one completion invocation.
type Request struct {
	System      string  // system-role instruction
	Prompt      string  // user-role prompt
	Temperature float64 // sampling temperature; 0 is valid and means deterministic
	MaxTokens   int     // output token budget; <=0 uses DefaultMaxTokens
}

// Client calls the chat-completion service. Safe for sequential use by
// a single operator session; every call is a blocking round trip.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	client   HTTPClient
	log      *zap.Logger
}

// NewClient builds a client. An empty API key is allowed; Complete
// then fails with ErrMissingCredential.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
		log:      log,
	}
}

// SetHTTPClient replaces the underlying HTTP client (tests).
func (c *Client) SetHTTPClient(hc HTTPClient) { c.client = hc }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one completion request and returns the generated text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Timeouts and transport failures are terminal for this call.
		return "", &UpstreamError{Body: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: err.Error()}
	}

	c.log.Debug("completion call finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.Int("prompt_bytes", len(req.Prompt)))

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &MalformedResponseError{RawBody: string(body)}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &MalformedResponseError{RawBody: string(body)}
	}

	return parsed.Choices[0].Message.Content, nil
}
