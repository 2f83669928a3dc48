package storage_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/storage"
)

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	prefix := "test:" + uuid.NewString() + ":"
	s := storage.NewRedis(client, prefix)
	t.Cleanup(func() { _ = s.Clear(ctx) })

	outsider := "outside:" + uuid.NewString()
	require.NoError(t, client.Set(ctx, outsider, "keep", 0).Err())
	t.Cleanup(func() { client.Del(ctx, outsider) })

	storeContract(t, s)

	v, err := client.Get(ctx, outsider).Result()
	require.NoError(t, err)
	assert.Equal(t, "keep", v, "clear only touches prefixed keys")
}
