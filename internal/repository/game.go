package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameAlreadyEnded = errors.New("game already ended")
)

const (
	gameSeqKey = "game:seq"
	gamePrefix = "game:"
)

type GameRepository interface {
	// CreateGame - stores a new active game and returns its durable id.
	CreateGame(ctx context.Context, game *entity.Game) (string, error)
	RecordMove(ctx context.Context, move entity.Move) error
	// CompleteGame - an empty winnerID records a draw.
	CompleteGame(ctx context.Context, gameID, winnerID string) error
	AbandonGame(ctx context.Context, gameID, winnerID string) error

	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	GetMoves(ctx context.Context, gameID string) ([]entity.Move, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return gamePrefix + id
}

func movesKey(gameID string) string {
	return gamePrefix + gameID + ":moves"
}

func (that *dbGame) CreateGame(ctx context.Context, game *entity.Game) (string, error) {
	seq, err := that.client.Incr(ctx, gameSeqKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate game id: %w", err)
	}

	record := game.Record()
	record.ID = strconv.FormatInt(seq, 10)
	record.State = entity.StateActive

	if record.StartedAt.IsZero() {
		record.StartedAt = time.Now().UTC()
	}

	gameJSON, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(record.ID), gameJSON, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to set game: %w", err)
	}

	return record.ID, nil
}

func (that *dbGame) RecordMove(ctx context.Context, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.RPush(ctx, movesKey(move.GameID), moveJSON).Err(); err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}

	return nil
}

func (that *dbGame) CompleteGame(ctx context.Context, gameID, winnerID string) error {
	return that.finish(ctx, gameID, winnerID, entity.StateCompleted)
}

func (that *dbGame) AbandonGame(ctx context.Context, gameID, winnerID string) error {
	return that.finish(ctx, gameID, winnerID, entity.StateAbandoned)
}

// finish - closes the game record and updates both tallies in one transaction.
func (that *dbGame) finish(ctx context.Context, gameID, winnerID, state string) error {
	key := gameKey(gameID)

	txn := func(tx *redis.Tx) error {
		record, err := getRecord(ctx, tx, key)
		if err != nil {
			return err
		}

		if record.State != entity.StateActive {
			return ErrGameAlreadyEnded
		}

		endedAt := time.Now().UTC()
		record.State = state
		record.WinnerID = winnerID
		record.EndedAt = &endedAt

		gameJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)

			switch winnerID {
			case "":
				pipe.HIncrBy(ctx, playerKey(record.Player1ID), "draws", 1)
				pipe.HIncrBy(ctx, playerKey(record.Player2ID), "draws", 1)
			case record.Player1ID:
				pipe.HIncrBy(ctx, playerKey(record.Player1ID), "wins", 1)
				pipe.HIncrBy(ctx, playerKey(record.Player2ID), "losses", 1)
			default:
				pipe.HIncrBy(ctx, playerKey(record.Player2ID), "wins", 1)
				pipe.HIncrBy(ctx, playerKey(record.Player1ID), "losses", 1)
			}

			return nil
		})

		return err
	}

	if err := that.client.Watch(ctx, txn, key); err != nil {
		return fmt.Errorf("failed to finish game %s: %w", gameID, err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	record, err := getRecord(ctx, that.client, gameKey(id))
	if err != nil {
		return &entity.GameRecord{}, err
	}

	return record, nil
}

func (that *dbGame) GetMoves(ctx context.Context, gameID string) ([]entity.Move, error) {
	values, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	moves := make([]entity.Move, 0, len(values))
	for _, value := range values {
		var move entity.Move
		if err = json.Unmarshal([]byte(value), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}

		moves = append(moves, move)
	}

	return moves, nil
}

func getRecord(ctx context.Context, client redis.Cmdable, key string) (*entity.GameRecord, error) {
	response, err := client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w by id", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}
