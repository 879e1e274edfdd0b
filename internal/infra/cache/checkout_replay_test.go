//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"smartbus/internal/infra/cache"
	"smartbus/internal/pkg/config"
	"smartbus/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "redisコンテナの起動に失敗")
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return config.RedisConfig{Addr: host + ":" + port.Port()}
}

func TestCheckoutReplayStore(t *testing.T) {
	ctx := context.Background()
	client, cleanup, err := cache.NewClient(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := cache.NewCheckoutReplayStore(client)

	t.Run("missing key returns nil", func(t *testing.T) {
		rec, err := store.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("reserve is exclusive until released", func(t *testing.T) {
		rec := commands.CheckoutRecord{RequestHash: "h1"}

		ok, err := store.Reserve(ctx, "k1", rec, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "k1", rec, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.Get(ctx, "k1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.Completed)
		assert.Equal(t, "h1", got.RequestHash)

		require.NoError(t, store.Release(ctx, "k1"))
		ok, err = store.Reserve(ctx, "k1", rec, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("complete overwrites the reservation", func(t *testing.T) {
		_, err := store.Reserve(ctx, "k2", commands.CheckoutRecord{RequestHash: "h2"}, time.Minute)
		require.NoError(t, err)

		err = store.Complete(ctx, "k2", commands.CheckoutRecord{
			RequestHash: "h2",
			CheckoutURL: "https://pay.example/x",
			OrderCode:   99,
		}, time.Hour)
		require.NoError(t, err)

		got, err := store.Get(ctx, "k2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Completed)
		assert.Equal(t, "https://pay.example/x", got.CheckoutURL)
		assert.EqualValues(t, 99, got.OrderCode)
	})
}
