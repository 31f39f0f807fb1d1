package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errInvalidPlayerID = errors.New("invalid player id")

type dbGame struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &dbGame{
		db: db,
	}
}

func (that *dbGame) CreateGame(ctx context.Context, game *entity.Game) (string, error) {
	player1ID, ok1 := parseID(game.Player1ID)
	player2ID, ok2 := parseID(game.Player2ID)
	if !ok1 || !ok2 {
		return "", errInvalidPlayerID
	}

	startedAt := game.CreatedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	model := gameModel{
		Player1ID:   player1ID,
		Player2ID:   player2ID,
		Player1Name: game.Player1Name,
		Player2Name: game.Player2Name,
		BoardSize:   game.BoardSize,
		State:       entity.StateActive,
		StartedAt:   startedAt,
	}

	if err := that.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return formatID(model.ID), nil
}

func (that *dbGame) RecordMove(ctx context.Context, move entity.Move) error {
	gameID, ok := parseID(move.GameID)
	if !ok {
		return repository.ErrGameNotFound
	}

	playerID, ok := parseID(move.PlayerID)
	if !ok {
		return errInvalidPlayerID
	}

	playedAt := move.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now().UTC()
	}

	err := that.db.WithContext(ctx).Create(&moveModel{
		GameID:     gameID,
		PlayerID:   playerID,
		Row:        move.Row,
		Col:        move.Col,
		Symbol:     move.Symbol,
		MoveNumber: move.MoveNumber,
		PlayedAt:   playedAt,
	}).Error
	if err != nil {
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

// finish - closes the game row and updates both tallies in one transaction.
func (that *dbGame) finish(ctx context.Context, gameID, winnerID, state string) error {
	id, ok := parseID(gameID)
	if !ok {
		return repository.ErrGameNotFound
	}

	err := that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game gameModel

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrGameNotFound
		}

		if err != nil {
			return err
		}

		if game.State != entity.StateActive {
			return repository.ErrGameAlreadyEnded
		}

		endedAt := time.Now().UTC()
		updates := map[string]any{
			"state":    state,
			"ended_at": endedAt,
		}

		var winner, loser uint

		switch winnerID {
		case "":
		case formatID(game.Player1ID):
			winner, loser = game.Player1ID, game.Player2ID
		case formatID(game.Player2ID):
			winner, loser = game.Player2ID, game.Player1ID
		default:
			return errInvalidPlayerID
		}

		if winner != 0 {
			updates["winner_id"] = winner
		}

		if err = tx.Model(&game).Updates(updates).Error; err != nil {
			return err
		}

		if winner == 0 {
			return tx.Model(&playerModel{}).
				Where("id IN ?", []uint{game.Player1ID, game.Player2ID}).
				Update("draws", gorm.Expr("draws + 1")).Error
		}

		if err = tx.Model(&playerModel{}).Where("id = ?", winner).
			Update("wins", gorm.Expr("wins + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&playerModel{}).Where("id = ?", loser).
			Update("losses", gorm.Expr("losses + 1")).Error
	})
	if err != nil {
		return fmt.Errorf("failed to finish game %s: %w", gameID, err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	gameID, ok := parseID(id)
	if !ok {
		return &entity.GameRecord{}, repository.ErrGameNotFound
	}

	var game gameModel

	err := that.db.WithContext(ctx).First(&game, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.GameRecord{}, repository.ErrGameNotFound
	}

	if err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	record := &entity.GameRecord{
		ID:          formatID(game.ID),
		Player1ID:   formatID(game.Player1ID),
		Player2ID:   formatID(game.Player2ID),
		Player1Name: game.Player1Name,
		Player2Name: game.Player2Name,
		BoardSize:   game.BoardSize,
		State:       game.State,
		StartedAt:   game.StartedAt,
		EndedAt:     game.EndedAt,
	}

	if game.WinnerID != nil {
		record.WinnerID = formatID(*game.WinnerID)
	}

	return record, nil
}

func (that *dbGame) GetMoves(ctx context.Context, gameID string) ([]entity.Move, error) {
	id, ok := parseID(gameID)
	if !ok {
		return nil, repository.ErrGameNotFound
	}

	var models []moveModel
	if err := that.db.WithContext(ctx).Where("game_id = ?", id).Order("move_number").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	moves := make([]entity.Move, 0, len(models))
	for _, model := range models {
		moves = append(moves, entity.Move{
			GameID:     gameID,
			PlayerID:   formatID(model.PlayerID),
			Row:        model.Row,
			Col:        model.Col,
			Symbol:     model.Symbol,
			MoveNumber: model.MoveNumber,
			PlayedAt:   model.PlayedAt,
		})
	}

	return moves, nil
}
