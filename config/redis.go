package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	opt, err := redis.ParseURL(App.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("[config.redis] invalid REDIS_URL")
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("[config.redis] connection failed")
	}
	log.Info().Msg("[config.redis] connected")
}
