package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

const (
	playerSeqKey     = "player:seq"
	playerNamePrefix = "player:name:"
	playerPrefix     = "player:"
)

type PlayerRepository interface {
	// CreateOrGetPlayer - the first registration of a username binds it to a player id for good.
	CreateOrGetPlayer(ctx context.Context, username string) (string, error)
	GetStats(ctx context.Context, id string) (entity.Stats, error)
}

type dbPlayer struct {
	client *redis.Client
}

type playerHash struct {
	Username  string `redis:"username"`
	Wins      int    `redis:"wins"`
	Losses    int    `redis:"losses"`
	Draws     int    `redis:"draws"`
	CreatedAt int64  `redis:"created_at"`
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func playerKey(id string) string {
	return playerPrefix + id
}

func playerNameKey(username string) string {
	return playerNamePrefix + strings.ToLower(username)
}

func (that *dbPlayer) CreateOrGetPlayer(ctx context.Context, username string) (string, error) {
	nameKey := playerNameKey(username)

	id, err := that.client.Get(ctx, nameKey).Result()
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to get player by name: %w", err)
	}

	seq, err := that.client.Incr(ctx, playerSeqKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate player id: %w", err)
	}

	newID := strconv.FormatInt(seq, 10)

	// the record exists before the name points at it
	err = that.client.HSet(ctx, playerKey(newID), playerHash{
		Username:  username,
		CreatedAt: time.Now().UnixMilli(),
	}).Err()
	if err != nil {
		return "", fmt.Errorf("failed to set player: %w", err)
	}

	ok, err := that.client.SetNX(ctx, nameKey, newID, 0).Result()
	if err != nil {
		that.client.Del(ctx, playerKey(newID))
		return "", fmt.Errorf("failed to bind username: %w", err)
	}

	// someone registered the same name in between
	if !ok {
		that.client.Del(ctx, playerKey(newID))

		id, err = that.client.Get(ctx, nameKey).Result()
		if err != nil {
			return "", fmt.Errorf("failed to get player by name: %w", err)
		}

		return id, nil
	}

	return newID, nil
}

func (that *dbPlayer) GetStats(ctx context.Context, id string) (entity.Stats, error) {
	result := that.client.HGetAll(ctx, playerKey(id))

	values, err := result.Result()
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get player by ID: %w", err)
	}

	if len(values) == 0 {
		return entity.Stats{}, ErrPlayerNotFound
	}

	var player playerHash
	if err = result.Scan(&player); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to scan player: %w", err)
	}

	return entity.Stats{
		Wins:   player.Wins,
		Losses: player.Losses,
		Draws:  player.Draws,
	}, nil
}
