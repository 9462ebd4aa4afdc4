package suggest

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

const openAIAPIURL = "https://api.openai.com/v1/chat/completions"

const (
	// The model is asked for a filename and nothing else, so a short
	// completion limit keeps latency and cost down.
	suggestionMaxTokens = 30
	// Low temperature keeps renames reproducible across runs.
	suggestionTemperature = 0.2
)

// OpenAIProvider requests filename suggestions from the OpenAI chat
// completions API.
type OpenAIProvider struct {
	// APIKey authenticates requests.
	APIKey string
	// BaseURL is the chat completions endpoint. Overridable for tests.
	BaseURL string
	// HTTPClient performs the requests.
	HTTPClient *http.Client
}

// NewOpenAIProvider creates a provider that talks to the public OpenAI API
// with the given key and request timeout.
func NewOpenAIProvider(apiKey string, timeout time.Duration) *OpenAIProvider {
	return &OpenAIProvider{
		APIKey:  apiKey,
		BaseURL: openAIAPIURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// ValidateConfig checks that the provider has an API key.
func (p *OpenAIProvider) ValidateConfig() error {
	if p.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required")
	}
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// SuggestFilename sends one chat completion request built from req and
// returns the raw suggestion with the usage the API reported.
func (p *OpenAIProvider) SuggestFilename(ctx context.Context, req *Request) (*Result, error) {
	if err := p.ValidateConfig(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)
	payload, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   suggestionMaxTokens,
		Temperature: suggestionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiStatusError(resp, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("API error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("API response contains no choices")
	}
	suggestion := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if suggestion == "" {
		return nil, fmt.Errorf("API returned an empty suggestion")
	}

	return &Result{
		Suggestion: suggestion,
		Usage: TokenUsage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		},
		Prompt: prompt,
	}, nil
}

// apiStatusError formats a non-200 response, pretty-printing JSON bodies so
// the API's structured errors stay readable in terminal output.
func apiStatusError(resp *http.Response, body []byte) error {
	msg := fmt.Sprintf("API error (status %d)", resp.StatusCode)
	if len(body) == 0 {
		return fmt.Errorf("%s: %s", msg, resp.Status)
	}
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, body, "", "  "); err == nil {
		return fmt.Errorf("%s:\n%s", msg, prettyJSON.String())
	}
	return fmt.Errorf("%s:\n%s", msg, string(body))
}
