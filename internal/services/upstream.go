package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"wellmade-relay/internal/models"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	unknownUpstreamErr  = "Unknown error"
)

var transport = &http.Transport{
	Proxy:               http.ProxyFromEnvironment,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
}

// completionRequest is the body sent upstream. Every field is always written,
// so explicit zeros and empty message content reach the API as sent.
type completionRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

// UpstreamClient posts chat completions to an OpenAI-compatible API.
// It sets no timeout and never retries.
type UpstreamClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewUpstreamClient(baseURL, apiKey string) *UpstreamClient {
	return &UpstreamClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Transport: transport},
	}
}

// Complete sends one completion request and returns the raw response body.
// A non-2xx status is returned as *UpstreamError.
func (c *UpstreamClient) Complete(ctx context.Context, model string, msgs []models.Message, maxTokens int, temperature float64) ([]byte, error) {
	payload := completionRequest{
		Model:       model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Details: upstreamErrorMessage(data)}
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("completion response is not valid JSON")
	}
	return data, nil
}

func upstreamErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return unknownUpstreamErr
	}
	msg := gjson.GetBytes(body, "error.message")
	if msg.Type != gjson.String || msg.Str == "" {
		return unknownUpstreamErr
	}
	return msg.Str
}
