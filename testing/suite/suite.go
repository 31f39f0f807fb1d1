package suite

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite runs a throwaway redis container for one test.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx := testContext(t)

	c := startContainer(t, &dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr: c.hostPort(redisPort),
	})
	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	c.await(t, "redis", func() error {
		return redisClient.Ping(ctx).Err()
	})

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  newLogger(),
		Storage: redisClient,
	}
}
