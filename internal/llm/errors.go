package llm

import "errors"

var (
	// ErrRateLimited marks a 429 from a provider; the orchestrator moves to
	// the next model immediately, no backoff.
	ErrRateLimited = errors.New("provider rate limited")

	ErrNoCompletion = errors.New("no completion returned")

	// ErrProvidersExhausted means every model in the chain failed; the caller
	// must fall back to the canned payload.
	ErrProvidersExhausted = errors.New("all providers exhausted")
)
