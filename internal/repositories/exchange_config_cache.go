package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

const exchangeConfigCacheKey = "exchange_config:current"

// ExchangeConfigCacheRepository caches the current exchange config in Redis
type ExchangeConfigCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached snapshot
}

// NewExchangeConfigCacheRepository creates a new repository instance with the given TTL
func NewExchangeConfigCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeConfigCacheRepository {
	return &ExchangeConfigCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetExchangeConfig fetches the cached config snapshot
func (r *ExchangeConfigCacheRepository) GetExchangeConfig(ctx context.Context) (models.ExchangeConfig, error) {
	val, err := r.client.Get(ctx, exchangeConfigCacheKey).Bytes()
	if err != nil {
		logger.Log.Infow("redis get",
			"key", exchangeConfigCacheKey,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return models.ExchangeConfig{}, fmt.Errorf("exchange config not found in cache")
		}
		return models.ExchangeConfig{}, err
	}

	cfg, err := models.ParseExchangeConfig(val)

	logger.Log.Infow("redis get",
		"key", exchangeConfigCacheKey,
		"result", cfg.Version(),
		"error", err,
	)

	if err != nil {
		return models.ExchangeConfig{}, err
	}
	return cfg, nil
}

// SetExchangeConfig caches the config snapshot with expiration
func (r *ExchangeConfigCacheRepository) SetExchangeConfig(ctx context.Context, cfg models.ExchangeConfig) error {
	data, err := cfg.MarshalJSON()
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, exchangeConfigCacheKey, data, r.exp).Err()

	logger.Log.Infow("redis set",
		"key", exchangeConfigCacheKey,
		"version", cfg.Version(),
		"result", "ok",
		"error", err,
	)

	return err
}
