// File path: internal/llm/providers/provider.go
package providers

import "context"

// Provider is the external text-generation capability: given a prompt and
// sampling parameters, return generated text. Implementations are
// provider-agnostic from the caller's perspective; prompt content and
// response parsing never depend on which provider served the request.
type Provider interface {
	Generate(ctx context.Context, prompt string, maxTokens int64, temperature float64) (string, error)
	Name() string
}
