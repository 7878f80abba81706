// File path: internal/llm/llm.go
package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/llm/providers"
)

type Provider = providers.Provider

// ErrNoCredential reports that the selected provider has no API key
// configured. The request boundary maps it to a provider-unconfigured
// failure before any external call is attempted.
var ErrNoCredential = errors.New("no credential configured for provider")

// Kind selects the concrete generation backend.
type Kind string

const (
	KindAnthropic Kind = "anthropic"
	KindOpenAI    Kind = "openai"
	KindLocal     Kind = "local"
)

const (
	defaultAnthropicModel = "claude-3-5-sonnet-20241022"
	defaultOpenAIModel    = "gpt-4o"
	defaultRequestTimeout = 120 * time.Second
)

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// Config is the explicit provider configuration handed to the orchestrator
// at construction time. All environment reads happen in LoadConfig; nothing
// below this layer touches the environment.
type Config struct {
	Provider       Kind
	Anthropic      AnthropicConfig
	OpenAI         OpenAIConfig
	RequestTimeout time.Duration
}

// LoadConfig assembles a Config from the environment in one place.
// AI_PROVIDER selects the backend (anthropic unless set to openai or local,
// matching the original deployment default).
func LoadConfig() Config {
	logger := common.Logger()
	cfg := Config{
		Provider: KindAnthropic,
		Anthropic: AnthropicConfig{
			APIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			Model:  defaultAnthropicModel,
		},
		OpenAI: OpenAIConfig{
			APIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			Model:  defaultOpenAIModel,
		},
		RequestTimeout: defaultRequestTimeout,
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER"))) {
	case "openai":
		cfg.Provider = KindOpenAI
	case "local":
		cfg.Provider = KindLocal
	}
	if model := strings.TrimSpace(os.Getenv("ANTHROPIC_MODEL")); model != "" {
		cfg.Anthropic.Model = model
	}
	if model := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")); model != "" {
		cfg.OpenAI.Model = model
	}
	if raw := strings.TrimSpace(os.Getenv("AI_HTTP_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn("llm: invalid AI_HTTP_TIMEOUT, using default", "value", raw, "error", err)
		} else {
			cfg.RequestTimeout = timeout
		}
	}
	return cfg
}

// NewProvider constructs the configured generation backend. A missing API
// key fails fast with ErrNoCredential rather than surfacing later as an
// authentication error mid-request.
func NewProvider(cfg Config) (Provider, error) {
	logger := common.Logger()
	switch cfg.Provider {
	case KindAnthropic, "":
		if cfg.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrNoCredential)
		}
		logger.Info("llm: Anthropic provider selected")
		return providers.NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.RequestTimeout), nil
	case KindOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrNoCredential)
		}
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.RequestTimeout), nil
	case KindLocal:
		logger.Warn("llm: local stub provider selected; responses are canned")
		return providers.NewLocalProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider)
	}
}
