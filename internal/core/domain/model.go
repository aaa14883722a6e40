package domain

import "fmt"

// Provider identifies the vendor serving a model. The set is closed: anything
// else is rejected at registry load time so a typo can never silently fail to
// match during routing.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderMistral   Provider = "mistral"
)

// ParseProvider converts a raw config string into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderMistral:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider: %q", s)
}

// Capability tags one thing a model is good at. Used for matching only, never
// ranked against each other.
type Capability string

const (
	CapabilityReasoning    Capability = "reasoning"
	CapabilityCode         Capability = "code"
	CapabilityMath         Capability = "math"
	CapabilityProse        Capability = "prose"
	CapabilityVision       Capability = "vision"
	CapabilityLongContext  Capability = "long-context"
	CapabilityFastResponse Capability = "fast-response"
)

// ParseCapability converts a raw string into a Capability.
func ParseCapability(s string) (Capability, error) {
	switch Capability(s) {
	case CapabilityReasoning, CapabilityCode, CapabilityMath, CapabilityProse,
		CapabilityVision, CapabilityLongContext, CapabilityFastResponse:
		return Capability(s), nil
	}
	return "", fmt.Errorf("unknown capability: %q", s)
}

// ModelDescriptor is one invokable model in the registry. Descriptors are
// built once at startup and never mutated afterward.
type ModelDescriptor struct {
	ID                  string
	Provider            Provider
	Capabilities        []Capability
	ContextWindowTokens int
	IsDefault           bool
}

// NewModelDescriptor validates raw configuration values and builds a
// descriptor. Capability duplicates are collapsed; order of first appearance
// is preserved.
func NewModelDescriptor(id, provider string, capabilities []string, contextWindow int, isDefault bool) (ModelDescriptor, error) {
	if id == "" {
		return ModelDescriptor{}, fmt.Errorf("model descriptor requires an id")
	}
	if contextWindow < 0 {
		return ModelDescriptor{}, fmt.Errorf("model %q: context window must be non-negative, got %d", id, contextWindow)
	}

	p, err := ParseProvider(provider)
	if err != nil {
		return ModelDescriptor{}, fmt.Errorf("model %q: %w", id, err)
	}

	seen := make(map[Capability]bool, len(capabilities))
	caps := make([]Capability, 0, len(capabilities))
	for _, raw := range capabilities {
		c, err := ParseCapability(raw)
		if err != nil {
			return ModelDescriptor{}, fmt.Errorf("model %q: %w", id, err)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		caps = append(caps, c)
	}

	return ModelDescriptor{
		ID:                  id,
		Provider:            p,
		Capabilities:        caps,
		ContextWindowTokens: contextWindow,
		IsDefault:           isDefault,
	}, nil
}

// Has reports whether the descriptor supports the given capability.
func (m *ModelDescriptor) Has(c Capability) bool {
	for _, have := range m.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// HasAll reports whether the descriptor supports every requested capability.
func (m *ModelDescriptor) HasAll(caps []Capability) bool {
	for _, c := range caps {
		if !m.Has(c) {
			return false
		}
	}
	return true
}

// HasAny reports whether the descriptor supports at least one requested capability.
func (m *ModelDescriptor) HasAny(caps []Capability) bool {
	for _, c := range caps {
		if m.Has(c) {
			return true
		}
	}
	return false
}

// SelectionRequest describes what a task needs from a model. It is built per
// call and never persisted.
type SelectionRequest struct {
	// Capabilities the task requires. Empty means "no requirements": the
	// default model is used without further filtering.
	Capabilities []Capability

	// PreferredProvider restricts routing to one vendor when set. Empty
	// means no preference.
	PreferredProvider Provider

	// FallbackAllowed controls what happens when PreferredProvider has no
	// matching candidate: true keeps all candidates in play, false makes
	// the selection an explicit miss.
	FallbackAllowed bool
}
