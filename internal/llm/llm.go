// Package llm abstracts the language-model providers behind a uniform
// Generate call and routes each analysis to the best configured one.
package llm

import (
	"context"
	"errors"
)

// ErrNoProviderConfigured means no provider credential is set. This is an
// operator misconfiguration, not a user error.
var ErrNoProviderConfigured = errors.New("no LLM provider configured")

// Prompt is the system/user pair produced by the prompt builder. Derived
// per request, never persisted.
type Prompt struct {
	System string
	User   string
}

// Provider is one LLM backend. Generate performs a single outbound request
// with no internal retry.
type Provider interface {
	Name() string
	Generate(ctx context.Context, p Prompt) (string, error)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
