// File path: internal/llm/providers/anthropic_client.go
package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bluslide/namegallery/internal/common"
)

type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

func NewAnthropicProvider(apiKey, model string, timeout time.Duration) *AnthropicProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	logger := common.Logger()
	logger.Info("llm: Anthropic provider configured", "model", model, "timeout", timeout)
	return &AnthropicProvider{client: anthropic.NewClient(opts...), model: model}
}

func (a *AnthropicProvider) Generate(ctx context.Context, prompt string, maxTokens int64, temperature float64) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: sending Anthropic message request", "model", a.model, "max_tokens", maxTokens, "temperature", temperature)
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		logger.Error("llm: Anthropic message request failed", "error", err)
		return "", err
	}
	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("no text content returned")
	}
	logger.Debug("llm: Anthropic message request succeeded", "chars", text.Len())
	return text.String(), nil
}

func (a *AnthropicProvider) Name() string {
	return "anthropic"
}
