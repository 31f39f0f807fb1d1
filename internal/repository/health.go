package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	healthProbeKey = "health:probe"
	healthProbeTTL = 10 * time.Second
)

type HealthRepository interface {
	Check(ctx context.Context) entity.StorageStatus
}

type dbHealth struct {
	client *redis.Client
}

func NewHealthRepository(client *redis.Client) HealthRepository {
	return &dbHealth{
		client: client,
	}
}

// Check - pings redis and tries a short lived write.
func (that *dbHealth) Check(ctx context.Context) entity.StorageStatus {
	status := entity.StorageStatus{Backend: "redis"}

	started := time.Now()
	if err := that.client.Ping(ctx).Err(); err != nil {
		status.Error = err.Error()
		return status
	}

	status.Connected = true
	status.LatencyMs = time.Since(started).Milliseconds()

	if err := that.client.Set(ctx, healthProbeKey, started.UnixMilli(), healthProbeTTL).Err(); err != nil {
		status.Error = err.Error()
		return status
	}

	status.WriteCapable = true

	return status
}
