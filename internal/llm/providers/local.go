// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is a deterministic stub used by tests and the -local flag.
// It answers every gallery request with a tiny fixed catalog and every
// hybrid request with a fixed hybrid list.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Generate(ctx context.Context, prompt string, maxTokens int64, temperature float64) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("empty prompt")
	}
	if strings.Contains(prompt, `"hybrids"`) {
		return localHybridResponse, nil
	}
	return localGalleryResponse, nil
}

func (l *LocalProvider) Name() string {
	return "local"
}

const localGalleryResponse = `Here is the gallery you asked for.
{
  "sections": [
    {
      "id": "stability-trust",
      "title": "Stability & Trust",
      "description": "Names emphasizing reliability, foundation, security",
      "sophistication": 2,
      "concepts": [
        {"name": "Keystone", "tagline": "The piece everything else depends on", "qualities": ["solid", "central"]},
        {"name": "Bedrock", "tagline": "A base that never shifts beneath you", "qualities": ["stable", "enduring"]}
      ]
    },
    {
      "id": "community-warmth",
      "title": "Community & Warmth",
      "description": "Names emphasizing belonging and shared values",
      "sophistication": 3,
      "concepts": [
        {"name": "Kindred", "tagline": "A community supporting each other through every stage", "qualities": ["warm", "belonging"]},
        {"name": "Hearth", "tagline": "The warm center people gather around", "qualities": ["warm", "dependable"]}
      ]
    }
  ]
}`

const localHybridResponse = `{
  "hybrids": [
    {"name": "Common Anchor", "tagline": "Shared values grounded in lasting stability", "qualities": ["shared", "grounded"], "blends": ["Kindred", "Keystone"]},
    {"name": "Kinship Rock", "tagline": "Belonging you can stand on", "qualities": ["belonging", "solid"], "blends": ["Kindred", "Bedrock"]}
  ]
}`
