package providers

import "context"

// GenerateRequest is a provider-agnostic text generation request.
type GenerateRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// GenerateResponse carries the generated text and the model that produced it.
type GenerateResponse struct {
	Text  string
	Model string
}

// Provider is the common interface all generation backends satisfy.
//
// Implementations degrade upstream failures into human-readable text in
// Text rather than returning an error, so callers always have something
// to show. A non-nil error is reserved for request-level problems such as
// an empty prompt or a canceled context.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}
