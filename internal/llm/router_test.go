package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkhlegal/legalbrain/internal/config"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, p Prompt) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(providers []Provider, large Provider) *Router {
	return NewRouter(providers, large, 800, NewStats(time.Hour), testLogger())
}

func TestRouter_NoProviderConfigured(t *testing.T) {
	r := newTestRouter(nil, nil)
	_, err := r.Analyze(context.Background(), Prompt{}, 10)
	if !errors.Is(err, ErrNoProviderConfigured) {
		t.Errorf("expected ErrNoProviderConfigured, got %v", err)
	}
}

func TestRouter_OnlySecondaryConfiguredCalledDirectly(t *testing.T) {
	// Anthropic unconfigured means it never appears in the provider list;
	// the router must go straight to the one that is configured.
	openai := &fakeProvider{name: "openai", text: "report body"}
	r := newTestRouter([]Provider{openai}, nil)

	text, err := r.Analyze(context.Background(), Prompt{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "report body" {
		t.Errorf("expected provider text unmodified, got %q", text)
	}
	if openai.calls != 1 {
		t.Errorf("expected exactly 1 call, got %d", openai.calls)
	}
}

func TestRouter_FallbackOnPrimaryFailure(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", err: errors.New("boom")}
	secondary := &fakeProvider{name: "openai", text: "fallback report"}
	r := newTestRouter([]Provider{primary, secondary}, nil)

	text, err := r.Analyze(context.Background(), Prompt{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "fallback report" {
		t.Errorf("expected fallback text, got %q", text)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("expected one call each, got primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestRouter_BothFailPropagatesOriginalError(t *testing.T) {
	primaryErr := errors.New("primary down")
	primary := &fakeProvider{name: "anthropic", err: primaryErr}
	secondary := &fakeProvider{name: "openai", err: errors.New("secondary down")}
	r := newTestRouter([]Provider{primary, secondary}, nil)

	_, err := r.Analyze(context.Background(), Prompt{}, 10)
	if !errors.Is(err, primaryErr) {
		t.Errorf("expected the original primary error, got %v", err)
	}
	if secondary.calls != 1 {
		t.Errorf("expected exactly one fallback attempt, got %d", secondary.calls)
	}
}

func TestRouter_SingleProviderNoFallback(t *testing.T) {
	only := &fakeProvider{name: "anthropic", err: errors.New("down")}
	r := newTestRouter([]Provider{only}, nil)

	_, err := r.Analyze(context.Background(), Prompt{}, 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if only.calls != 1 {
		t.Errorf("expected 1 call (no retry against the same provider), got %d", only.calls)
	}
}

func TestRouter_LargePackPrefersLongContextProvider(t *testing.T) {
	anthropic := &fakeProvider{name: "anthropic", text: "anthropic report"}
	gemini := &fakeProvider{name: "gemini", text: "gemini report"}
	r := newTestRouter([]Provider{anthropic, gemini}, gemini)

	text, err := r.Analyze(context.Background(), Prompt{}, 801)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "gemini report" {
		t.Errorf("expected the long-context provider for a large pack, got %q", text)
	}
	if anthropic.calls != 0 {
		t.Errorf("expected anthropic untouched, got %d calls", anthropic.calls)
	}
}

func TestRouter_SmallPackIgnoresLongContextPreference(t *testing.T) {
	anthropic := &fakeProvider{name: "anthropic", text: "anthropic report"}
	gemini := &fakeProvider{name: "gemini", text: "gemini report"}
	r := newTestRouter([]Provider{anthropic, gemini}, gemini)

	text, err := r.Analyze(context.Background(), Prompt{}, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "anthropic report" {
		t.Errorf("expected the first preferred provider at the threshold, got %q", text)
	}
}

func TestRouter_FallbackIsADifferentProvider(t *testing.T) {
	anthropic := &fakeProvider{name: "anthropic", text: "anthropic report"}
	gemini := &fakeProvider{name: "gemini", err: errors.New("gemini down")}
	r := newTestRouter([]Provider{anthropic, gemini}, gemini)

	text, err := r.Analyze(context.Background(), Prompt{}, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "anthropic report" {
		t.Errorf("expected fallback onto a different provider, got %q", text)
	}
	if gemini.calls != 1 {
		t.Errorf("expected gemini not retried, got %d calls", gemini.calls)
	}
}

func TestRouter_RecordsLatencyPerProvider(t *testing.T) {
	stats := NewStats(time.Hour)
	openai := &fakeProvider{name: "openai", text: "ok"}
	r := NewRouter([]Provider{openai}, nil, 800, stats, testLogger())

	if _, err := r.Analyze(context.Background(), Prompt{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := stats.Snapshot()
	if snap["openai"].Count != 1 {
		t.Errorf("expected one recorded sample for openai, got %+v", snap)
	}
}

func TestNewRouterFromConfig_ProviderSelection(t *testing.T) {
	cfg := config.Config{
		OpenAIAPIKey:   "sk-test",
		OpenAIModel:    "gpt-5",
		LargePackPages: 800,
		LLMTimeout:     time.Second,
	}
	r := NewRouterFromConfig(cfg, NewStats(time.Hour), testLogger())

	if len(r.providers) != 1 {
		t.Fatalf("expected 1 configured provider, got %d", len(r.providers))
	}
	if r.providers[0].Name() != "openai" {
		t.Errorf("expected openai, got %q", r.providers[0].Name())
	}
	if r.large != nil {
		t.Error("expected no long-context provider without a Google key")
	}
}

func TestNewRouterFromConfig_GeminiIsLongContext(t *testing.T) {
	cfg := config.Config{
		AnthropicAPIKey: "key-a",
		GoogleAPIKey:    "key-g",
		LargePackPages:  800,
		LLMTimeout:      time.Second,
	}
	r := NewRouterFromConfig(cfg, NewStats(time.Hour), testLogger())

	if len(r.providers) != 2 {
		t.Fatalf("expected 2 configured providers, got %d", len(r.providers))
	}
	if r.large == nil || r.large.Name() != "gemini" {
		t.Error("expected gemini as the long-context provider")
	}
}
