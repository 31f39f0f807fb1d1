package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Lobby turns inbound events of one connection into notifications.
type Lobby struct {
	logger *slog.Logger

	directory   *Directory
	broker      *Broker
	coordinator *Coordinator
	presence    *Presence
}

func NewLobby(logger *slog.Logger, directory *Directory, broker *Broker, coordinator *Coordinator, presence *Presence) *Lobby {
	return &Lobby{
		logger: logger,

		directory:   directory,
		broker:      broker,
		coordinator: coordinator,
		presence:    presence,
	}
}

func (that *Lobby) participant(connID string) (entity.Participant, error) {
	participant, ok := that.directory.ByConn(connID)
	if !ok {
		return entity.Participant{}, apperror.ErrNotRegistered
	}

	return participant, nil
}

// Register - binds the connection and resumes a game left behind by an earlier connection.
func (that *Lobby) Register(ctx context.Context, connID, username string) ([]entity.Notification, error) {
	var (
		notifications []entity.Notification
		detached      bool
	)

	// a connection switching to another name leaves the old player first
	if previous, ok := that.directory.ByConn(connID); ok && !strings.EqualFold(previous.Username, strings.TrimSpace(username)) {
		notifications, detached = that.detach(ctx, connID)
	}

	view, err := that.directory.Register(ctx, connID, username)
	if err != nil {
		if detached {
			notifications = append(notifications, that.rosterUpdate(ctx)...)
		}

		return notifications, err
	}

	result := entity.RegistrationResult{
		Success: true,
		Player:  &view,
	}

	var resumed []entity.Notification

	if game, ok := that.coordinator.ActiveGame(view.ID); ok {
		that.directory.SetGame(view.ID, game.ID)
		result.ActiveGame = game.ViewFor(view.ID)

		if that.presence.Reattach(view.ID) {
			resumed = append(resumed, entity.ToPlayer(game.OpponentOf(view.ID), entity.ActionOpponentReconnected, entity.OpponentReconnected{
				GameID:  game.ID,
				Message: view.Username + " reconnected!",
			}))
		}
	}

	notifications = append(notifications, entity.ToConn(connID, entity.ActionRegister, result))
	notifications = append(notifications, resumed...)

	return append(notifications, that.rosterUpdate(ctx)...), nil
}

// Unregister - called once the connection is gone.
func (that *Lobby) Unregister(ctx context.Context, connID string) []entity.Notification {
	notifications, ok := that.detach(ctx, connID)
	if !ok {
		return nil
	}

	return append(notifications, that.rosterUpdate(ctx)...)
}

// detach - unbinds the connection without a roster broadcast. Reports whether a player was bound.
func (that *Lobby) detach(ctx context.Context, connID string) ([]entity.Notification, bool) {
	participant, ok := that.directory.Unregister(ctx, connID)
	if !ok {
		return nil, false
	}

	return that.presence.Detach(participant), true
}

func (that *Lobby) Challenge(_ context.Context, connID, targetName string, boardSize int) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.broker.Propose(participant.PlayerID, targetName, boardSize)
}

func (that *Lobby) AcceptChallenge(ctx context.Context, connID, challengeID string) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	notifications, err := that.broker.Accept(ctx, challengeID, participant.PlayerID)
	if err != nil {
		return notifications, err
	}

	return that.supervise(participant.PlayerID, notifications), nil
}

func (that *Lobby) DeclineChallenge(_ context.Context, connID, challengeID string) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.broker.Decline(challengeID, participant.PlayerID), nil
}

func (that *Lobby) Move(ctx context.Context, connID, gameID string, row, col int) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.coordinator.ApplyMove(ctx, gameID, participant.PlayerID, row, col)
}

func (that *Lobby) Surrender(ctx context.Context, connID, gameID string) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.coordinator.Surrender(ctx, gameID, participant.PlayerID)
}

func (that *Lobby) SendRematch(_ context.Context, connID, opponentID string, boardSize int) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.broker.ProposeRematch(participant.PlayerID, opponentID, boardSize)
}

func (that *Lobby) AcceptRematch(ctx context.Context, connID, rematchID string) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	notifications, err := that.broker.AcceptRematch(ctx, rematchID, participant.PlayerID)
	if err != nil {
		return notifications, err
	}

	return that.supervise(participant.PlayerID, notifications), nil
}

// supervise - a player may have disconnected while the game of playerID was being stored,
// when there was no game yet to start a grace period for.
func (that *Lobby) supervise(playerID string, notifications []entity.Notification) []entity.Notification {
	game, ok := that.coordinator.ActiveGame(playerID)
	if !ok {
		return notifications
	}

	return append(notifications, that.presence.Supervise(game)...)
}

func (that *Lobby) DeclineRematch(_ context.Context, connID, rematchID string) ([]entity.Notification, error) {
	participant, err := that.participant(connID)
	if err != nil {
		return nil, err
	}

	return that.broker.DeclineRematch(rematchID, participant.PlayerID), nil
}

// Heartbeat - storage failures are logged, the client is never told.
func (that *Lobby) Heartbeat(ctx context.Context, connID string) ([]entity.Notification, error) {
	if err := that.directory.Heartbeat(ctx, connID); err != nil {
		that.logger.Warn("failed to record heartbeat", "method", "Heartbeat", "connID", connID, "error", err)
	}

	return nil, nil
}

// ActivePlayers - the roster for the asking connection only.
func (that *Lobby) ActivePlayers(ctx context.Context, connID string) ([]entity.Notification, error) {
	players, err := that.directory.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active players: %w", err)
	}

	return []entity.Notification{entity.ToConn(connID, entity.ActionActivePlayers, players)}, nil
}

func (that *Lobby) ListActive(ctx context.Context) ([]entity.ActivePlayer, error) {
	return that.directory.ListActive(ctx)
}

// Sweep - housekeeping run on a ticker: expired proposals, finished games past the
// rematch window and stale sessions.
func (that *Lobby) Sweep(ctx context.Context) {
	log := that.logger.With("method", "Sweep")

	expired := that.broker.Sweep()
	pruned := that.coordinator.Prune(that.broker.TTL())

	stale, err := that.directory.CleanupStale(ctx)
	if err != nil {
		log.Error("failed to cleanup sessions", "error", err)
	}

	if expired > 0 || pruned > 0 || stale > 0 {
		log.Info("swept", "expiredProposals", expired, "prunedGames", pruned, "staleSessions", stale)
	}
}

// Stop - cancels pending grace periods.
func (that *Lobby) Stop() {
	that.presence.Stop()
}

func (that *Lobby) rosterUpdate(ctx context.Context) []entity.Notification {
	players, err := that.directory.ListActive(ctx)
	if err != nil {
		that.logger.Error("failed to broadcast active players", "method", "rosterUpdate", "error", err)
		return nil
	}

	return []entity.Notification{entity.ToAll(entity.ActionActivePlayers, players)}
}
