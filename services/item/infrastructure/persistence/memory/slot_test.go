package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStorage_GetMissing(t *testing.T) {
	s := NewSlotStorage()
	v, found, err := s.Get(context.Background(), "lost-found-items")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestSlotStorage_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s := NewSlotStorage()

	require.NoError(t, s.Set(ctx, "lost-found-items", `[]`))
	require.NoError(t, s.Set(ctx, "other", `x`))

	v, found, err := s.Get(ctx, "lost-found-items")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)
}

func TestSlotStorage_EmptyValueIsFound(t *testing.T) {
	ctx := context.Background()
	s := NewSlotStorage()
	require.NoError(t, s.Set(ctx, "k", ""))

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSlotStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewSlotStorage()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, fmt.Sprintf("k%d", i%4), "v")
			_, _, _ = s.Get(ctx, "k0")
		}()
	}
	wg.Wait()

	assert.NoError(t, s.Ping(ctx))
}
