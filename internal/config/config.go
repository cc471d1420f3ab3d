package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// LLM providers
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string
	GoogleAPIKey    string
	GeminiModel     string

	// Router
	LargePackPages int
	LLMTimeout     time.Duration

	// Extraction
	OCRFallback bool

	// Upload limits
	MaxUploadBytes int64

	// Rules persistence
	RulesPath string

	// Object storage (reserved for stored packs; not consumed by the pipeline)
	StorageBucket     string
	AWSRegion         string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// Vector store (reserved; pipeline does not embed yet)
	PineconeAPIKey string
	PineconeIndex  string
	PGDSN          string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     envOr("OPENAI_MODEL", "gpt-5"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:     envOr("GEMINI_MODEL", "gemini-1.5-pro"),

		LargePackPages: envInt("LARGE_PACK_PAGES", 800),
		LLMTimeout:     envDuration("LLM_TIMEOUT", 120*time.Second),

		OCRFallback: envBool("OCR_FALLBACK", false),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 104857600), // 100MB

		RulesPath: envOr("RULES_PATH", "data/rules.json"),

		StorageBucket:     envOr("STORAGE_BUCKET", "pkh-legal-brain"),
		AWSRegion:         envOr("AWS_REGION", "eu-west-2"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),

		PineconeAPIKey: os.Getenv("PINECONE_API_KEY"),
		PineconeIndex:  os.Getenv("PINECONE_INDEX"),
		PGDSN:          os.Getenv("PG_DSN"),
	}

	if cfg.LargePackPages <= 0 {
		cfg.LargePackPages = 800
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 120 * time.Second
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 104857600
	}

	return cfg
}

// HasProvider reports whether at least one LLM credential is configured.
func (c Config) HasProvider() bool {
	return c.AnthropicAPIKey != "" || c.OpenAIAPIKey != "" || c.GoogleAPIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
