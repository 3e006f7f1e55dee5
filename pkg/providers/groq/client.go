// Package groq implements the Groq provider. Groq serves an
// OpenAI-compatible chat-completions API, so the client is built on the
// openai-go SDK pointed at the Groq base URL.
package groq

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/your-org/ai-gateway/pkg/providers"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"

	systemInstruction = "You are a helpful AI assistant. Provide clear, concise, and helpful responses."
)

// availableModels lists the Groq model identifiers known to this gateway.
var availableModels = []string{
	"llama3-8b-8192",
	"llama3-70b-8192",
	"mixtral-8x7b-32768",
	"gemma-7b-it",
	"claude-3-haiku-20240307",
}

// Client implements providers.Provider for the Groq chat-completions API.
type Client struct {
	api   openai.Client
	model string
}

// NewClient constructs a Groq client. A missing API key is a hard
// construction failure, which is how the startup selector decides to
// fall back to Hugging Face.
func NewClient(apiKey string, model string, baseURL string, opts ...option.RequestOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, providers.ErrMissingAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	// Transient upstream failures surface as error text; they are not
	// retried at this layer.
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	options = append(options, opts...)

	return &Client{api: openai.NewClient(options...), model: model}, nil
}

func (c *Client) Name() string { return "groq" }

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// AvailableModels returns the known Groq model identifiers.
func (c *Client) AvailableModels() []string {
	out := make([]string, len(availableModels))
	copy(out, availableModels)
	return out
}

// Generate sends a non-streaming two-message exchange to the configured
// model. All outcomes, success and failure, come back as plain text;
// upstream errors never propagate to the caller.
func (c *Client) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return providers.GenerateResponse{}, providers.ErrEmptyPrompt
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = 100
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return providers.GenerateResponse{Text: describeError(err), Model: c.model}, nil
	}
	if len(completion.Choices) == 0 {
		return providers.GenerateResponse{Text: "Error: empty completion from Groq", Model: c.model}, nil
	}

	return providers.GenerateResponse{Text: completion.Choices[0].Message.Content, Model: c.model}, nil
}

// describeError maps SDK failures to the human-readable strings callers see.
func describeError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"):
		return "Error: Rate limit exceeded. Please try again in a moment."
	case strings.Contains(msg, "authentication"):
		return "Error: Invalid API key. Please check your GROQ_API_KEY."
	case strings.Contains(msg, "connection"):
		return "Error: Connection failed. Please check your internet connection."
	default:
		return "Error: " + err.Error()
	}
}
