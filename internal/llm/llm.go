package llm

import (
	"context"
	"errors"
)

// DefaultMaxTokens bounds completion length when callers pass no limit.
const DefaultMaxTokens = 2000

// Client abstracts chat-completion providers for study material generation.
type Client interface {
	// Complete sends a single-turn prompt and returns the model's raw
	// text output. maxTokens <= 0 means DefaultMaxTokens.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

var (
	// ErrNotConfigured is returned when no provider credential is present.
	ErrNotConfigured = errors.New("llm client is not configured")
	// ErrGateway wraps transport and provider failures.
	ErrGateway = errors.New("llm request failed")
	// ErrParse means no JSON object could be located in the model output.
	ErrParse = errors.New("no JSON object in llm response")
	// ErrContract means the JSON did not match the expected schema.
	ErrContract = errors.New("llm response violates expected schema")
)

// Disabled is the client wired in when OPENROUTER_API_KEY is absent.
// Every call fails with ErrNotConfigured so handlers surface an explicit
// configuration error instead of a silent fallback.
type Disabled struct{}

// Complete returns ErrNotConfigured.
func (Disabled) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	_ = ctx
	_ = prompt
	_ = maxTokens
	return "", ErrNotConfigured
}

var _ Client = Disabled{}
