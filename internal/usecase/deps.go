package usecase

import (
	"context"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type playerStore interface {
	CreateOrGetPlayer(ctx context.Context, username string) (string, error)
	GetStats(ctx context.Context, id string) (entity.Stats, error)
}

type gameStore interface {
	CreateGame(ctx context.Context, game *entity.Game) (string, error)
	RecordMove(ctx context.Context, move entity.Move) error
	CompleteGame(ctx context.Context, gameID, winnerID string) error
	AbandonGame(ctx context.Context, gameID, winnerID string) error
}

type sessionStore interface {
	AddSession(ctx context.Context, session entity.Session) error
	RemoveSession(ctx context.Context, connID string) error
	UpdateHeartbeat(ctx context.Context, connID string, at time.Time) error
	ActiveSessions(ctx context.Context, since time.Time) ([]entity.Session, error)
	CleanupStaleSessions(ctx context.Context, before time.Time) (int64, error)
}

type contentFilter interface {
	IsProfane(text string) bool
}

// symbolSource decides who plays X. Intn has the math/rand contract.
type symbolSource interface {
	Intn(n int) int
}

// Notifier delivers notifications produced outside of a request, such as forfeits.
type Notifier interface {
	Send(notifications []entity.Notification)
}
