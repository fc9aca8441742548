package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

func TestExchangeConfigCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewExchangeConfigCacheRepository(rdb, 2*time.Second)

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetExchangeConfig(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Set and Get config", func(t *testing.T) {
		cfg, err := models.ParseExchangeConfig([]byte(`{"version":"v1","feeRate":{"G_to_P":0.15}}`))
		require.NoError(t, err)

		require.NoError(t, repo.SetExchangeConfig(ctx, cfg))

		got, err := repo.GetExchangeConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v1", got.Version())
		rate, ok := got.FeeRate(models.NewPair(models.Gold, models.Platinum))
		assert.True(t, ok)
		assert.Equal(t, "0.15", rate.String())
	})

	t.Run("Cached value expires", func(t *testing.T) {
		time.Sleep(3 * time.Second)

		_, err := repo.GetExchangeConfig(ctx)
		assert.Error(t, err)
	})
}
