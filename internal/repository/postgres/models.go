package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type playerModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:20;not null"`
	UsernameKey string `gorm:"size:20;not null;uniqueIndex"`
	Wins        int    `gorm:"not null;default:0"`
	Losses      int    `gorm:"not null;default:0"`
	Draws       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (playerModel) TableName() string {
	return "players"
}

type gameModel struct {
	ID          uint   `gorm:"primaryKey"`
	Player1ID   uint   `gorm:"not null;index"`
	Player2ID   uint   `gorm:"not null;index"`
	Player1Name string `gorm:"size:20;not null"`
	Player2Name string `gorm:"size:20;not null"`
	BoardSize   int    `gorm:"not null"`
	State       string `gorm:"size:16;not null;index"`
	WinnerID    *uint
	StartedAt   time.Time `gorm:"not null"`
	EndedAt     *time.Time
}

func (gameModel) TableName() string {
	return "games"
}

type moveModel struct {
	ID         uint      `gorm:"primaryKey"`
	GameID     uint      `gorm:"not null;uniqueIndex:idx_game_move_number"`
	PlayerID   uint      `gorm:"not null"`
	Row        int       `gorm:"column:row_index;not null"`
	Col        int       `gorm:"column:col_index;not null"`
	Symbol     string    `gorm:"size:1;not null"`
	MoveNumber int       `gorm:"not null;uniqueIndex:idx_game_move_number"`
	PlayedAt   time.Time `gorm:"not null"`
}

func (moveModel) TableName() string {
	return "game_moves"
}

type healthProbe struct {
	ID        uint `gorm:"primaryKey;autoIncrement:false"`
	CheckedAt time.Time
}

func (healthProbe) TableName() string {
	return "health_probes"
}

// Migrate - creates or updates every table the record store needs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(&playerModel{}, &gameModel{}, &moveModel{}, &healthProbe{})
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	return nil
}

func parseID(id string) (uint, bool) {
	value, err := strconv.ParseUint(id, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}

	return uint(value), true
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
