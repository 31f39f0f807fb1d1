package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	sessionPrefix       = "session:"
	sessionHeartbeatKey = "sessions:heartbeat"
)

type SessionRepository interface {
	AddSession(ctx context.Context, session entity.Session) error
	RemoveSession(ctx context.Context, connID string) error
	UpdateHeartbeat(ctx context.Context, connID string, at time.Time) error

	// ActiveSessions - sessions whose last heartbeat is not older than since.
	ActiveSessions(ctx context.Context, since time.Time) ([]entity.Session, error)
	// CleanupStaleSessions - removes sessions whose last heartbeat is older than before.
	CleanupStaleSessions(ctx context.Context, before time.Time) (int64, error)
}

type dbSession struct {
	client *redis.Client
}

type sessionHash struct {
	PlayerID      string `redis:"player_id"`
	Username      string `redis:"username"`
	ConnectedAt   int64  `redis:"connected_at"`
	LastHeartbeat int64  `redis:"last_heartbeat"`
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &dbSession{
		client: client,
	}
}

func sessionKey(connID string) string {
	return sessionPrefix + connID
}

func (that *dbSession) AddSession(ctx context.Context, session entity.Session) error {
	hash := sessionHash{
		PlayerID:      session.PlayerID,
		Username:      session.Username,
		ConnectedAt:   session.ConnectedAt.UnixMilli(),
		LastHeartbeat: session.LastHeartbeat.UnixMilli(),
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, sessionKey(session.ConnID), hash)
		pipe.ZAdd(ctx, sessionHeartbeatKey, redis.Z{
			Score:  float64(hash.LastHeartbeat),
			Member: session.ConnID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}

	return nil
}

func (that *dbSession) RemoveSession(ctx context.Context, connID string) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(connID))
		pipe.ZRem(ctx, sessionHeartbeatKey, connID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}

func (that *dbSession) UpdateHeartbeat(ctx context.Context, connID string, at time.Time) error {
	key := sessionKey(connID)

	exists, err := that.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	if exists == 0 {
		return ErrSessionNotFound
	}

	millis := at.UnixMilli()

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "last_heartbeat", millis)
		pipe.ZAdd(ctx, sessionHeartbeatKey, redis.Z{Score: float64(millis), Member: connID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}

	return nil
}

func (that *dbSession) ActiveSessions(ctx context.Context, since time.Time) ([]entity.Session, error) {
	connIDs, err := that.client.ZRangeByScore(ctx, sessionHeartbeatKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(since.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(connIDs) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(connIDs))

	_, err = that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, connID := range connIDs {
			cmds[i] = pipe.HGetAll(ctx, sessionKey(connID))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	sessions := make([]entity.Session, 0, len(connIDs))
	for i, cmd := range cmds {
		// removed between the two round trips
		if len(cmd.Val()) == 0 {
			continue
		}

		var hash sessionHash
		if err = cmd.Scan(&hash); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		sessions = append(sessions, entity.Session{
			ConnID:        connIDs[i],
			PlayerID:      hash.PlayerID,
			Username:      hash.Username,
			ConnectedAt:   time.UnixMilli(hash.ConnectedAt),
			LastHeartbeat: time.UnixMilli(hash.LastHeartbeat),
		})
	}

	return sessions, nil
}

func (that *dbSession) CleanupStaleSessions(ctx context.Context, before time.Time) (int64, error) {
	connIDs, err := that.client.ZRangeByScore(ctx, sessionHeartbeatKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list stale sessions: %w", err)
	}

	if len(connIDs) == 0 {
		return 0, nil
	}

	keys := make([]string, len(connIDs))
	members := make([]any, len(connIDs))
	for i, connID := range connIDs {
		keys[i] = sessionKey(connID)
		members[i] = connID
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, sessionHeartbeatKey, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to remove stale sessions: %w", err)
	}

	return int64(len(connIDs)), nil
}
