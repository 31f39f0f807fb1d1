package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dbPlayer struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &dbPlayer{
		db: db,
	}
}

func (that *dbPlayer) CreateOrGetPlayer(ctx context.Context, username string) (string, error) {
	player := playerModel{
		Username:    username,
		UsernameKey: strings.ToLower(username),
	}

	// a concurrent registration of the same name wins the insert, both read the same row back
	err := that.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username_key"}}, DoNothing: true}).
		Create(&player).Error
	if err != nil {
		return "", fmt.Errorf("failed to create player: %w", err)
	}

	var stored playerModel
	if err = that.db.WithContext(ctx).Where("username_key = ?", player.UsernameKey).First(&stored).Error; err != nil {
		return "", fmt.Errorf("failed to get player by name: %w", err)
	}

	return formatID(stored.ID), nil
}

func (that *dbPlayer) GetStats(ctx context.Context, id string) (entity.Stats, error) {
	playerID, ok := parseID(id)
	if !ok {
		return entity.Stats{}, repository.ErrPlayerNotFound
	}

	var player playerModel

	err := that.db.WithContext(ctx).First(&player, playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Stats{}, repository.ErrPlayerNotFound
	}

	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get player by ID: %w", err)
	}

	return entity.Stats{
		Wins:   player.Wins,
		Losses: player.Losses,
		Draws:  player.Draws,
	}, nil
}
