package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// Client talks to an OpenAI-compatible chat-completions endpoint
// (OpenRouter by default). One call per model, no retries here.
type Client struct {
	httpc   HTTPClient
	apiKey  string
	baseURL string
}

func NewClient(httpc HTTPClient, apiKey, baseURL string) *Client {
	return &Client{httpc: httpc, apiKey: apiKey, baseURL: baseURL}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one chat-completion call and returns the raw message text.
// A 429 wraps ErrRateLimited; any other non-200 yields a provider error
// carrying a truncated body snippet.
func (c *Client) Complete(ctx context.Context, model, system, user string, maxTokens int) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("model %s: %w", model, ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("model %s: status %d: %s", model, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("model %s: decode response: %w", model, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("model %s: %w", model, ErrNoCompletion)
	}
	return out.Choices[0].Message.Content, nil
}
