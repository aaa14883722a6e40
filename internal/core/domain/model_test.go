package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelDescriptor(t *testing.T) {
	m, err := NewModelDescriptor("gpt-4o", "openai",
		[]string{"reasoning", "prose", "reasoning"}, 128000, true)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, m.Provider)
	// Duplicates collapse, first-appearance order kept.
	assert.Equal(t, []Capability{CapabilityReasoning, CapabilityProse}, m.Capabilities)
	assert.True(t, m.IsDefault)
}

func TestNewModelDescriptor_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		provider      string
		capabilities  []string
		contextWindow int
		wantErr       string
	}{
		{"missing id", "", "openai", nil, 0, "requires an id"},
		{"unknown provider", "m", "skynet", nil, 0, "unknown provider"},
		{"unknown capability", "m", "openai", []string{"clairvoyance"}, 0, "unknown capability"},
		{"negative context window", "m", "openai", nil, -1, "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModelDescriptor(tt.id, tt.provider, tt.capabilities, tt.contextWindow, false)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCapabilityMembership(t *testing.T) {
	m := ModelDescriptor{
		ID:           "m",
		Provider:     ProviderAnthropic,
		Capabilities: []Capability{CapabilityCode, CapabilityMath},
	}

	assert.True(t, m.Has(CapabilityCode))
	assert.False(t, m.Has(CapabilityVision))

	assert.True(t, m.HasAll([]Capability{CapabilityCode, CapabilityMath}))
	assert.False(t, m.HasAll([]Capability{CapabilityCode, CapabilityVision}))
	assert.True(t, m.HasAll(nil))

	assert.True(t, m.HasAny([]Capability{CapabilityVision, CapabilityMath}))
	assert.False(t, m.HasAny([]Capability{CapabilityVision, CapabilityProse}))
}
