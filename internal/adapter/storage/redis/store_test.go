package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/wordlookup/internal/adapter/storage"
	redisstore "github.com/heartmarshall/wordlookup/internal/adapter/storage/redis"
	"github.com/heartmarshall/wordlookup/internal/config"
)

// startRedis starts a disposable Redis container and returns its address.
func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestStore_RoundTrip(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	s, err := redisstore.New(ctx, config.RedisConfig{Addr: addr, PoolSize: 2}, "wordlookup:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Get(ctx, "recent")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "recent", []byte(`["cat","dog"]`)))
	got, err := s.Get(ctx, "recent")
	require.NoError(t, err)
	assert.Equal(t, `["cat","dog"]`, string(got))

	assert.NoError(t, s.Ping(ctx))
}

func TestNew_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redisstore.New(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, "")
	assert.Error(t, err)
}
