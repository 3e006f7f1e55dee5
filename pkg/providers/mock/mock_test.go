package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/ai-gateway/pkg/providers"
)

func TestGenerateEchoesPrompt(t *testing.T) {
	resp, err := New().Generate(context.Background(), providers.GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "[Mock Response] I received your prompt: 'hi...'. Please configure an AI provider.", resp.Text)
	assert.Equal(t, "mock", resp.Model)
}

func TestGenerateTruncatesLongPrompt(t *testing.T) {
	prompt := strings.Repeat("a", 120)
	resp, err := New().Generate(context.Background(), providers.GenerateRequest{Prompt: prompt})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "'"+strings.Repeat("a", 50)+"...'")
	assert.NotContains(t, resp.Text, strings.Repeat("a", 51))
}
