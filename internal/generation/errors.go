// File path: internal/generation/errors.go
package generation

import "errors"

// Failure taxonomy for a generation flow. Every failure reaching the
// request boundary wraps exactly one of these (or is a
// *response.MalformedResponseError), so callers can branch on kind without
// string matching.
var (
	// ErrInvalidRequest: missing or malformed caller input. Fails fast;
	// no external call is made.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrProviderUnconfigured: no credential available for the selected
	// generation provider. Fails fast.
	ErrProviderUnconfigured = errors.New("generation provider unconfigured")
	// ErrGenerationFailed: the external call errored or timed out. It is
	// surfaced to the caller and never retried internally.
	ErrGenerationFailed = errors.New("generation failed")
)
