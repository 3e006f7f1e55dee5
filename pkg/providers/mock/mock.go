// Package mock provides the deterministic fallback responder used when no
// real generation provider is configured.
package mock

import (
	"context"
	"fmt"

	"github.com/your-org/ai-gateway/pkg/providers"
)

const promptEcho = 50

// Responder echoes a prefix of the prompt back to the caller.
type Responder struct{}

func New() *Responder { return &Responder{} }

func (*Responder) Name() string { return "mock" }

func (*Responder) Generate(_ context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
	prefix := []rune(req.Prompt)
	if len(prefix) > promptEcho {
		prefix = prefix[:promptEcho]
	}
	text := fmt.Sprintf("[Mock Response] I received your prompt: '%s...'. Please configure an AI provider.", string(prefix))
	return providers.GenerateResponse{Text: text, Model: "mock"}, nil
}
