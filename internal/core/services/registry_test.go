package services

import (
	"testing"

	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRegistry_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewStaticRegistry([]domain.ModelDescriptor{
		{ID: "dup", Provider: domain.ProviderOpenAI},
		{ID: "dup", Provider: domain.ProviderGoogle},
	})
	assert.ErrorContains(t, err, "duplicate model id")
}

func TestStaticRegistry_Lookup(t *testing.T) {
	registry, err := NewStaticRegistry([]domain.ModelDescriptor{
		{ID: "one", Provider: domain.ProviderOpenAI},
		{ID: "two", Provider: domain.ProviderAnthropic},
	})
	require.NoError(t, err)

	m, err := registry.Get("two")
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderAnthropic, m.Provider)

	_, err = registry.Get("missing")
	assert.ErrorContains(t, err, "model not found")

	assert.Equal(t, 2, registry.Len())
}

func TestStaticRegistry_ListIsACopy(t *testing.T) {
	registry, err := NewStaticRegistry([]domain.ModelDescriptor{
		{ID: "immutable", Provider: domain.ProviderGoogle},
	})
	require.NoError(t, err)

	list := registry.List()
	list[0].ID = "clobbered"

	again := registry.List()
	assert.Equal(t, "immutable", again[0].ID)
}
