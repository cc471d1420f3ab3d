package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkhlegal/legalbrain/internal/config"
)

// Router dispatches a prompt to the best configured provider. Packs above
// LargePackPages prefer the long-context provider; otherwise the first
// configured provider in preference order wins. On failure the router makes
// exactly one fallback attempt against a different configured provider and
// otherwise propagates the original error. Calls are strictly sequential.
type Router struct {
	providers  []Provider // preference order
	large      Provider   // long-context target, nil when unconfigured
	largePages int
	stats      *Stats
	log        *slog.Logger
}

func NewRouter(providers []Provider, large Provider, largePages int, stats *Stats, log *slog.Logger) *Router {
	return &Router{
		providers:  providers,
		large:      large,
		largePages: largePages,
		stats:      stats,
		log:        log,
	}
}

// NewRouterFromConfig builds the provider set from configured credentials.
// Preference order: Anthropic, OpenAI, Gemini. Gemini doubles as the
// long-context provider.
func NewRouterFromConfig(cfg config.Config, stats *Stats, log *slog.Logger) *Router {
	var providers []Provider
	var large Provider

	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.LLMTimeout))
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout))
	}
	if cfg.GoogleAPIKey != "" {
		gemini := NewGeminiClient(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
		providers = append(providers, gemini)
		large = gemini
	}

	return NewRouter(providers, large, cfg.LargePackPages, stats, log)
}

// Analyze routes the prompt. pageCount is the total page count of the pack,
// used for the large-pack heuristic.
func (r *Router) Analyze(ctx context.Context, p Prompt, pageCount int) (string, error) {
	primary := r.pick(pageCount)
	if primary == nil {
		return "", ErrNoProviderConfigured
	}

	text, err := r.call(ctx, primary, p)
	if err == nil {
		return text, nil
	}
	r.log.Warn("provider failed", "provider", primary.Name(), "error", err)

	if fb := r.fallbackFor(primary); fb != nil {
		fbText, fbErr := r.call(ctx, fb, p)
		if fbErr == nil {
			return fbText, nil
		}
		r.log.Warn("fallback provider failed", "provider", fb.Name(), "error", fbErr)
	}

	// The original failure is the one worth reporting.
	return "", err
}

func (r *Router) pick(pageCount int) Provider {
	if pageCount > r.largePages && r.large != nil {
		return r.large
	}
	if len(r.providers) > 0 {
		return r.providers[0]
	}
	return nil
}

// fallbackFor returns the first configured provider that is not the primary,
// or nil when only one provider exists.
func (r *Router) fallbackFor(primary Provider) Provider {
	for _, p := range r.providers {
		if p.Name() != primary.Name() {
			return p
		}
	}
	return nil
}

func (r *Router) call(ctx context.Context, p Provider, prompt Prompt) (string, error) {
	start := time.Now()
	text, err := p.Generate(ctx, prompt)
	if r.stats != nil {
		r.stats.Record(p.Name(), time.Since(start).Milliseconds())
	}
	return text, err
}
