package port

import (
	"context"

	"lexasta/internal/domain"
)

// ModelRequest is one single-turn call to a language-model service.
type ModelRequest struct {
	System    string
	Prompt    string
	Image     *domain.Image // optional vision input, sent before the prompt
	MaxTokens int
}

// ModelResponse is the concatenated text of a model reply.
type ModelResponse struct {
	Text  string
	Model string
}

// ModelClient abstracts the language-model service used for extraction and
// reconciliation.
type ModelClient interface {
	Complete(ctx context.Context, req ModelRequest) (*ModelResponse, error)
}

type apiKeyKey struct{}

// WithAPIKey attaches a per-request model credential to ctx.
func WithAPIKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, apiKeyKey{}, key)
}

// WithoutAPIKey masks any per-request credential on ctx, so clients fall back
// to their configured key.
func WithoutAPIKey(ctx context.Context) context.Context {
	return context.WithValue(ctx, apiKeyKey{}, "")
}

// APIKeyFromContext returns the per-request credential, or fallback when none
// is set.
func APIKeyFromContext(ctx context.Context, fallback string) string {
	if key, ok := ctx.Value(apiKeyKey{}).(string); ok && key != "" {
		return key
	}
	return fallback
}
