package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type onlineChecker interface {
	IsOnline(playerID string) bool
}

type forfeiter interface {
	ActiveGame(playerID string) (entity.Game, bool)
	Forfeit(ctx context.Context, gameID, loserID string) ([]entity.Notification, error)
}

type pendingForfeit struct {
	gameID string
	timer  Timer
}

// Presence gives disconnected players a grace period before their game is forfeited.
type Presence struct {
	logger *slog.Logger

	clock       Clock
	gracePeriod time.Duration

	online   onlineChecker
	games    forfeiter
	notifier Notifier

	mu      sync.Mutex
	pending map[string]*pendingForfeit
}

func NewPresence(
	logger *slog.Logger,
	clock Clock,
	gracePeriod time.Duration,
	online onlineChecker,
	games forfeiter,
	notifier Notifier,
) *Presence {
	return &Presence{
		logger: logger,

		clock:       clock,
		gracePeriod: gracePeriod,

		online:   online,
		games:    games,
		notifier: notifier,

		pending: make(map[string]*pendingForfeit),
	}
}

// Detach - starts the grace period of a player that went offline in the middle of a game.
func (that *Presence) Detach(participant entity.Participant) []entity.Notification {
	game, ok := that.games.ActiveGame(participant.PlayerID)
	if !ok {
		return nil
	}

	return that.startGrace(participant.PlayerID, participant.Username, game, true)
}

// Supervise - starts the grace period of players who left while game was being created.
// Players already waiting out a grace period keep their timer.
func (that *Presence) Supervise(game entity.Game) []entity.Notification {
	var notifications []entity.Notification

	for _, playerID := range []string{game.Player1ID, game.Player2ID} {
		if that.online.IsOnline(playerID) {
			continue
		}

		notifications = append(notifications, that.startGrace(playerID, game.NameOf(playerID), game, false)...)
	}

	return notifications
}

// startGrace - with replace unset an already running timer wins and nothing is sent.
func (that *Presence) startGrace(playerID, username string, game entity.Game, replace bool) []entity.Notification {
	log := that.logger.With("method", "startGrace", "playerID", playerID)

	entry := &pendingForfeit{gameID: game.ID}

	that.mu.Lock()
	if previous, exists := that.pending[playerID]; exists {
		if !replace {
			that.mu.Unlock()
			return nil
		}

		previous.timer.Stop()
	}

	entry.timer = that.clock.AfterFunc(that.gracePeriod, func() {
		that.expire(playerID, entry)
	})
	that.pending[playerID] = entry
	that.mu.Unlock()

	log.Info("grace period started", "gameID", game.ID, "gracePeriod", that.gracePeriod)

	return []entity.Notification{
		entity.ToPlayer(game.OpponentOf(playerID), entity.ActionOpponentDisconnected, entity.OpponentDisconnected{
			GameID:   game.ID,
			Message:  username + " disconnected",
			WaitTime: int(that.gracePeriod / time.Second),
		}),
	}
}

// Reattach - cancels a pending forfeit. Reports whether one was pending.
func (that *Presence) Reattach(playerID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.pending[playerID]
	if !ok {
		return false
	}

	entry.timer.Stop()
	delete(that.pending, playerID)

	return true
}

func (that *Presence) expire(playerID string, entry *pendingForfeit) {
	log := that.logger.With("method", "expire", "playerID", playerID, "gameID", entry.gameID)

	that.mu.Lock()
	if that.pending[playerID] != entry {
		that.mu.Unlock()
		return
	}
	delete(that.pending, playerID)
	that.mu.Unlock()

	if that.online.IsOnline(playerID) {
		return
	}

	notifications, err := that.games.Forfeit(context.Background(), entry.gameID, playerID)
	if err != nil {
		log.Debug("nothing to forfeit", "error", err)
		return
	}

	log.Info("player forfeited after grace period")

	that.notifier.Send(notifications)
}

// Pending - number of running grace periods.
func (that *Presence) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.pending)
}

// Stop - cancels every grace period, used on shutdown.
func (that *Presence) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for playerID, entry := range that.pending {
		entry.timer.Stop()
		delete(that.pending, playerID)
	}
}
