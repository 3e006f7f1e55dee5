// Package huggingface implements the Hugging Face Inference API provider.
// Each request is classified to a model category, and the candidates for
// that category are tried in order until one produces a usable result.
package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/your-org/ai-gateway/internal/retry"
	"github.com/your-org/ai-gateway/pkg/providers"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co"
	defaultModel   = "microsoft/DialoGPT-medium"
	defaultTimeout = 25 * time.Second

	exhaustedMessage = "Sorry, all models are currently unavailable. Please try again later."
)

// errorIndicators flag a response body as a failure. This is a textual
// heuristic, not structural: a legitimate completion containing one of
// these substrings is misclassified and the next candidate is tried.
var errorIndicators = []string{"error", "404", "503", "not found", "unavailable", "loading"}

// Client implements providers.Provider for the Hugging Face Inference API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	catalog    Catalog
	retryDelay time.Duration

	// RetryHook, when set, is invoked with the model name each time a
	// candidate fails and the next one is about to be tried.
	RetryHook func(model string)
}

// NewClient constructs a Hugging Face client. The API key may be empty;
// requests then go out unauthenticated and typically hit free-tier limits.
func NewClient(apiKey string, model string, httpClient *http.Client, baseURL string) *Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		catalog:    DefaultCatalog(),
		retryDelay: time.Second,
	}
}

func (c *Client) Name() string { return "huggingface" }

// Model returns the configured default model identifier.
func (c *Client) Model() string { return c.model }

// SetCatalog replaces the built-in model catalog. Call before serving
// traffic; the catalog is read-only afterwards.
func (c *Client) SetCatalog(catalog Catalog) {
	if len(catalog) > 0 {
		c.catalog = catalog
	}
}

// Generate classifies the prompt and tries each candidate model in order
// until one returns a usable completion. The configured default model is
// always appended as the final candidate, even when it already appears in
// the category list. Exhaustion degrades to fixed fallback text, not an
// error.
func (c *Client) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return providers.GenerateResponse{}, providers.ErrEmptyPrompt
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = 50
	}

	category := Classify(req.Prompt)
	candidates := append(append([]string{}, c.catalog[category]...), c.model)

	for i, model := range candidates {
		text, err := c.callModel(ctx, model, req)
		if err == nil && !isErrorIndicator(text) {
			if model != c.model {
				text = fmt.Sprintf("[%s model: %s] %s", capitalize(string(category)), model, text)
			}
			return providers.GenerateResponse{Text: text, Model: model}, nil
		}

		if i == len(candidates)-1 {
			break
		}
		if c.RetryHook != nil {
			c.RetryHook(model)
		}
		if werr := retry.Wait(ctx, c.retryDelay); werr != nil {
			return providers.GenerateResponse{}, werr
		}
	}

	return providers.GenerateResponse{Text: exhaustedMessage, Model: c.model}, nil
}

// callModel issues one raw inference call. Failures come back both ways:
// as degraded text matching the error indicators, and as a typed error so
// the fallback loop does not depend on text sniffing alone.
func (c *Client) callModel(ctx context.Context, model string, req providers.GenerateRequest) (string, error) {
	url := c.baseURL + "/models/" + model
	hReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), err
	}
	if c.apiKey != "" {
		hReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	payload := buildPayload(model, req.Prompt, req.MaxTokens, req.Temperature)
	body, err := providers.DoJSON(ctx, c.httpClient, hReq, payload)
	if err != nil {
		var statusErr *providers.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("Error %d", statusErr.Code), err
		}
		return fmt.Sprintf("Error: %v", err), err
	}

	return parseResponse(body), nil
}

// parseResponse extracts generated text from the heterogeneous JSON shapes
// the Inference API returns: either a sequence of objects or a single
// object, with the text under one of several well-known fields.
func parseResponse(body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("Parse error: %v", err)
	}
	return strings.TrimSpace(extractText(data))
}

// textFields in priority order.
var textFields = []string{"generated_text", "summary_text", "translation_text"}

func extractText(data any) string {
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return fmt.Sprint(v)
		}
		if m, ok := v[0].(map[string]any); ok {
			if text, ok := firstTextField(m); ok {
				return text
			}
		}
		return fmt.Sprint(v[0])
	case map[string]any:
		if text, ok := firstTextField(v); ok {
			return text
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

func firstTextField(m map[string]any) (string, bool) {
	for _, key := range textFields {
		if s, ok := m[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

// isErrorIndicator reports whether the text reads like an upstream failure.
func isErrorIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range errorIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// the annotation format used in category prefixes.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
