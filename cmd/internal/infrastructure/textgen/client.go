package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	ErrEmptyCompletion = errors.New("text generation returned no text")
	ErrNotConfigured   = errors.New("text generation is not configured")
)

// Generator produces text for a prompt. Implemented by Client, faked in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client talks to a hosted text-generation endpoint that accepts
// {"model", "prompt"} and answers {"text"}.
type Client struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(url, apiKey, model string) *Client {
	return &Client{
		url:        url,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientFromEnv reads TEXTGEN_URL, TEXTGEN_API_KEY and TEXTGEN_MODEL.
func NewClientFromEnv() (*Client, error) {
	url := os.Getenv("TEXTGEN_URL")
	if url == "" {
		return nil, errors.New("TEXTGEN_URL is not set")
	}
	return NewClient(url, os.Getenv("TEXTGEN_API_KEY"), os.Getenv("TEXTGEN_MODEL")), nil
}

// Unconfigured stands in when no provider is set up, every call fails.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(&generateRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation failed with status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out generateResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", err
	}

	if out.Text == "" {
		return "", ErrEmptyCompletion
	}
	return out.Text, nil
}
