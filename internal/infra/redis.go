package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/formsight/backend/internal/app/appconfig"
)

func Redis(conf *appconfig.Config) (*redis.Client, error) {
	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	// the redis container may still be starting up when we are
	err = retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return client.Ping(ctx).Err()
	}, retry.Attempts(5), retry.Delay(time.Second))
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping")
		return nil, err
	}

	return client, nil
}
