package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "gpt-4o"}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "gpt-4o", got.Name)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Get(ctx, "k", &got))
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", -time.Second))

	var got string
	assert.ErrorContains(t, c.Get(ctx, "k", &got), "expired")
}
