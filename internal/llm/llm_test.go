// File path: internal/llm/llm_test.go
package llm

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_CHAT_MODEL", "")
	t.Setenv("AI_HTTP_TIMEOUT", "")

	cfg := LoadConfig()
	if cfg.Provider != KindAnthropic {
		t.Errorf("default provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-3-5-sonnet-20241022" {
		t.Errorf("default anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("default openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("default timeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("AI_HTTP_TIMEOUT", "30s")

	cfg := LoadConfig()
	if cfg.Provider != KindOpenAI {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadConfigBadTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("AI_HTTP_TIMEOUT", "soon")
	cfg := LoadConfig()
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("timeout = %v, want default on parse failure", cfg.RequestTimeout)
	}
}

func TestNewProviderMissingCredential(t *testing.T) {
	_, err := NewProvider(Config{Provider: KindAnthropic})
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
	_, err = NewProvider(Config{Provider: KindOpenAI})
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
}

func TestNewProviderLocal(t *testing.T) {
	provider, err := NewProvider(Config{Provider: KindLocal})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if provider.Name() != "local" {
		t.Errorf("provider name = %q", provider.Name())
	}
}

func TestNewProviderUnknownKind(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "cohere"}); err == nil {
		t.Fatal("expected error for unknown provider kind")
	}
}
