package modeldata

import "github.com/continuum-hq/model-router/internal/core/domain"

// DefaultCatalog is the registry used when no models are configured. One
// entry, and only one, carries the default flag.
var DefaultCatalog = []domain.ModelDescriptor{
	{
		ID:       "gpt-4o",
		Provider: domain.ProviderOpenAI,
		Capabilities: []domain.Capability{
			domain.CapabilityReasoning,
			domain.CapabilityProse,
			domain.CapabilityVision,
		},
		ContextWindowTokens: 128000,
		IsDefault:           true,
	},
	{
		ID:       "gpt-4o-mini",
		Provider: domain.ProviderOpenAI,
		Capabilities: []domain.Capability{
			domain.CapabilityFastResponse,
			domain.CapabilityProse,
		},
		ContextWindowTokens: 128000,
	},
	{
		ID:       "claude-3-5-sonnet",
		Provider: domain.ProviderAnthropic,
		Capabilities: []domain.Capability{
			domain.CapabilityCode,
			domain.CapabilityReasoning,
			domain.CapabilityProse,
		},
		ContextWindowTokens: 200000,
	},
	{
		ID:       "claude-3-haiku",
		Provider: domain.ProviderAnthropic,
		Capabilities: []domain.Capability{
			domain.CapabilityFastResponse,
		},
		ContextWindowTokens: 200000,
	},
	{
		ID:       "gemini-1.5-pro",
		Provider: domain.ProviderGoogle,
		Capabilities: []domain.Capability{
			domain.CapabilityLongContext,
			domain.CapabilityMath,
			domain.CapabilityVision,
		},
		ContextWindowTokens: 1000000,
	},
	{
		ID:       "mistral-large",
		Provider: domain.ProviderMistral,
		Capabilities: []domain.Capability{
			domain.CapabilityCode,
			domain.CapabilityMath,
		},
		ContextWindowTokens: 32000,
	},
}
