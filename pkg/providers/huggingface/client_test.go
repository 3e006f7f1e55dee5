package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-gateway/pkg/providers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", "my-default-model", srv.Client(), srv.URL)
	c.retryDelay = time.Millisecond
	return c, srv
}

func TestGenerateFirstCandidateSucceeds(t *testing.T) {
	var gotModel, gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotModel = strings.TrimPrefix(r.URL.Path, "/models/")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "Doing great!"}})
	})

	resp, err := c.Generate(context.Background(), providers.GenerateRequest{Prompt: "hello there", MaxTokens: 30})
	require.NoError(t, err)

	// First conversation candidate, annotated because it is not the default.
	assert.Equal(t, "microsoft/DialoGPT-medium", gotModel)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "[Conversation model: microsoft/DialoGPT-medium] Doing great!", resp.Text)
	assert.Equal(t, "microsoft/DialoGPT-medium", resp.Model)
}

func TestGenerateFallsBackToDefaultModel(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		model := strings.TrimPrefix(r.URL.Path, "/models/")
		calls = append(calls, model)
		if model != "my-default-model" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "fresh output"}})
	})

	resp, err := c.Generate(context.Background(), providers.GenerateRequest{Prompt: "hi friend", MaxTokens: 30})
	require.NoError(t, err)

	assert.Equal(t, []string{"microsoft/DialoGPT-medium", "microsoft/DialoGPT-large", "my-default-model"}, calls)
	// Default model results carry no category annotation.
	assert.Equal(t, "fresh output", resp.Text)
	assert.Equal(t, "my-default-model", resp.Model)
}

func TestGenerateExhaustsAllCandidates(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	resp, err := c.Generate(context.Background(), providers.GenerateRequest{Prompt: "hello", MaxTokens: 30})
	require.NoError(t, err)
	assert.Equal(t, "Sorry, all models are currently unavailable. Please try again later.", resp.Text)
	assert.Equal(t, 3, calls)
}

func TestGenerateTreatsIndicatorTextAsFailure(t *testing.T) {
	// A 200 response whose body reads like a failure is skipped too.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		model := strings.TrimPrefix(r.URL.Path, "/models/")
		if model == "gpt2" {
			_ = json.NewEncoder(w).Encode(map[string]string{"generated_text": "model is loading"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"generated_text": "a quiet poem"})
	})

	resp, err := c.Generate(context.Background(), providers.GenerateRequest{Prompt: "write a poem", MaxTokens: 30})
	require.NoError(t, err)
	assert.Equal(t, "[Text_generation model: distilgpt2] a quiet poem", resp.Text)
	assert.Equal(t, "distilgpt2", resp.Model)
}

func TestGenerateCanceledDuringBackoff(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c.retryDelay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, providers.GenerateRequest{Prompt: "hello", MaxTokens: 30})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	c := NewClient("", "", nil, "")
	_, err := c.Generate(context.Background(), providers.GenerateRequest{Prompt: "  "})
	require.ErrorIs(t, err, providers.ErrEmptyPrompt)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"list with summary", `[{"summary_text":"  X  "}]`, "X"},
		{"object with translation", `{"translation_text":"Y"}`, "Y"},
		{"list with generated text", `[{"generated_text":"once upon a time"}]`, "once upon a time"},
		{"priority order", `{"summary_text":"s","generated_text":"g"}`, "g"},
		{"unrecognized object", `{"foo":"bar"}`, "map[foo:bar]"},
		{"bare string", `"plain"`, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseResponse([]byte(tt.body)))
		})
	}

	assert.Contains(t, parseResponse([]byte("not json")), "Parse error:")
}

func TestIsErrorIndicator(t *testing.T) {
	assert.True(t, isErrorIndicator("Error 503"))
	assert.True(t, isErrorIndicator("model Not Found"))
	assert.True(t, isErrorIndicator("currently LOADING"))
	assert.False(t, isErrorIndicator("a perfectly fine completion"))
}

func TestDefaultsApplied(t *testing.T) {
	c := NewClient("", "", nil, "")
	assert.Equal(t, "microsoft/DialoGPT-medium", c.Model())
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, time.Second, c.retryDelay)
}
