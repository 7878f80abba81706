// File path: internal/generation/orchestrator.go
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/bluslide/namegallery/internal/attention"
	"github.com/bluslide/namegallery/internal/catalog"
	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/insight"
	"github.com/bluslide/namegallery/internal/llm"
	"github.com/bluslide/namegallery/internal/prompt"
	"github.com/bluslide/namegallery/internal/response"
)

// Sampling parameters per flow. The catalog pass needs room for a hundred
// concepts; the hybrid pass runs slightly cooler for more coherent blends.
const (
	catalogMaxTokens   = 8000
	catalogTemperature = 1.0
	hybridMaxTokens    = 4000
	hybridTemperature  = 0.9

	// Explicit selection needs at least two concepts to blend.
	minSelectedConcepts = 2
)

// State tracks a flow instance through its lifecycle. Flows are never
// reused; every request constructs a fresh one.
type State string

const (
	StateIdle     State = "idle"
	StatePrompted State = "prompt_built"
	StateAwaiting State = "awaiting_response"
	StateParsed   State = "parsed"
	StateFailed   State = "failed"
)

// CatalogFlow sequences one initial-catalog generation: validate input,
// build the prompt, call the provider once, parse and normalize the output.
type CatalogFlow struct {
	provider llm.Provider
	state    State
}

// NewCatalogFlow returns a fresh flow bound to a provider. A nil provider
// fails at Run time with ErrProviderUnconfigured.
func NewCatalogFlow(provider llm.Provider) *CatalogFlow {
	return &CatalogFlow{provider: provider, state: StateIdle}
}

func (f *CatalogFlow) State() State { return f.state }

func (f *CatalogFlow) Run(ctx context.Context, challenge string) (catalog.Catalog, error) {
	logger := common.Logger()
	if strings.TrimSpace(challenge) == "" {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: challenge required", ErrInvalidRequest)
	}
	if f.provider == nil {
		f.state = StateFailed
		return nil, ErrProviderUnconfigured
	}
	built, err := prompt.BuildGalleryPrompt(challenge)
	if err != nil {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	f.state = StatePrompted

	logger.Info("generation: requesting catalog", "provider", f.provider.Name(), "prompt_length", len(built))
	f.state = StateAwaiting
	raw, err := f.provider.Generate(ctx, built, catalogMaxTokens, catalogTemperature)
	if err != nil {
		f.state = StateFailed
		logger.Error("generation: catalog call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	parsed, err := response.ParseCatalog(raw)
	if err != nil {
		f.state = StateFailed
		logger.Error("generation: catalog response unparseable", "error", err)
		return nil, err
	}
	f.state = StateParsed
	logger.Info("generation: catalog parsed", "sections", len(parsed), "concepts", parsed.ConceptCount())
	return parsed, nil
}

// HybridFlow sequences one hybrid-synthesis generation. The explicit-
// selection and passive-signal variants share the same external shape and
// differ only in how blending material is assembled and validated.
type HybridFlow struct {
	provider llm.Provider
	state    State
}

func NewHybridFlow(provider llm.Provider) *HybridFlow {
	return &HybridFlow{provider: provider, state: StateIdle}
}

func (f *HybridFlow) State() State { return f.state }

// RunSelected synthesizes hybrids from an explicit user selection. At least
// two concepts are required; one concept leaves nothing to blend.
func (f *HybridFlow) RunSelected(ctx context.Context, challenge string, selected []catalog.Concept) ([]catalog.Concept, error) {
	if len(selected) < minSelectedConcepts {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: at least %d selected concepts required, got %d", ErrInvalidRequest, minSelectedConcepts, len(selected))
	}
	return f.run(ctx, challenge, selected)
}

// RunFromSignals synthesizes hybrids from passively observed attention. The
// insight summary is derived here with the on-request variant and returned
// alongside the hybrids so the caller can display what drove the blend.
func (f *HybridFlow) RunFromSignals(ctx context.Context, challenge string, gallery catalog.Catalog, signals attention.Signals) ([]catalog.Concept, insight.Summary, error) {
	if len(gallery) == 0 {
		f.state = StateFailed
		return nil, insight.Summary{}, fmt.Errorf("%w: original gallery required", ErrInvalidRequest)
	}
	summary := insight.Derive(gallery, signals, insight.OnRequestVariant)
	material := prompt.HybridMaterialFromInsights(gallery, summary)
	if len(material) == 0 {
		f.state = StateFailed
		return nil, summary, fmt.Errorf("%w: attention signals identify no concepts to blend", ErrInvalidRequest)
	}
	hybrids, err := f.run(ctx, challenge, material)
	if err != nil {
		return nil, summary, err
	}
	return hybrids, summary, nil
}

func (f *HybridFlow) run(ctx context.Context, challenge string, material []catalog.Concept) ([]catalog.Concept, error) {
	logger := common.Logger()
	if strings.TrimSpace(challenge) == "" {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: challenge required", ErrInvalidRequest)
	}
	if f.provider == nil {
		f.state = StateFailed
		return nil, ErrProviderUnconfigured
	}
	built, err := prompt.BuildHybridPrompt(challenge, material)
	if err != nil {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	f.state = StatePrompted

	logger.Info("generation: requesting hybrids", "provider", f.provider.Name(), "material", len(material))
	f.state = StateAwaiting
	raw, err := f.provider.Generate(ctx, built, hybridMaxTokens, hybridTemperature)
	if err != nil {
		f.state = StateFailed
		logger.Error("generation: hybrid call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	hybrids, err := response.ParseHybrids(raw)
	if err != nil {
		f.state = StateFailed
		logger.Error("generation: hybrid response unparseable", "error", err)
		return nil, err
	}
	f.state = StateParsed
	logger.Info("generation: hybrids parsed", "hybrids", len(hybrids))
	return hybrids, nil
}
