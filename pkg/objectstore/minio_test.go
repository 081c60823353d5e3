package objectstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslost/lostfound/pkg/config"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "slots/lost-found-items.json", objectName("lost-found-items"))
}

func TestIsNoSuchKey(t *testing.T) {
	assert.False(t, isNoSuchKey(assert.AnError))
}

// Integration tests: skipped unless MINIO_ENDPOINT is set.
func TestMinioIntegration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set; skipping integration tests")
	}

	cfg := &config.Config{
		MinioEndpoint:     endpoint,
		MinioBucket:       "lostfound-test",
		MinioRootUser:     os.Getenv("MINIO_ROOT_USER"),
		MinioRootPassword: os.Getenv("MINIO_ROOT_PASSWORD"),
	}

	ctx := context.Background()
	c, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, c.Ping(ctx))

	key := "test-" + uuid.NewString()

	_, found, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, key, `[{"id":"a"}]`))
	val, found, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, val)
}
