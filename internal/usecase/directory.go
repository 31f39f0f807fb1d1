package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 20
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Directory knows who is online and over which connection.
type Directory struct {
	logger *slog.Logger

	filter   contentFilter
	players  playerStore
	sessions sessionStore
	clock    Clock

	heartbeatWindow time.Duration

	mu           sync.RWMutex
	participants map[string]*entity.Participant // by player id
	connToPlayer map[string]string
	nameToPlayer map[string]string // lower case username
}

func NewDirectory(
	logger *slog.Logger,
	filter contentFilter,
	players playerStore,
	sessions sessionStore,
	clock Clock,
	heartbeatWindow time.Duration,
) *Directory {
	return &Directory{
		logger: logger,

		filter:   filter,
		players:  players,
		sessions: sessions,
		clock:    clock,

		heartbeatWindow: heartbeatWindow,

		participants: make(map[string]*entity.Participant),
		connToPlayer: make(map[string]string),
		nameToPlayer: make(map[string]string),
	}
}

// ValidateUsername - returns the trimmed name or the first rule it breaks.
func (that *Directory) ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)

	if username == "" {
		return "", apperror.ErrInvalidUsername
	}

	if length := utf8.RuneCountInString(username); length < minUsernameLength || length > maxUsernameLength {
		return "", apperror.ErrUsernameLength
	}

	if that.filter.IsProfane(username) {
		return "", apperror.ErrInappropriateContent
	}

	if !usernamePattern.MatchString(username) {
		return "", apperror.ErrInvalidCharacters
	}

	return username, nil
}

// Register - binds connID to the player behind username, creating the player on first use.
func (that *Directory) Register(ctx context.Context, connID, rawUsername string) (entity.ParticipantView, error) {
	log := that.logger.With("method", "Register", "connID", connID)

	username, err := that.ValidateUsername(rawUsername)
	if err != nil {
		return entity.ParticipantView{}, err
	}

	playerID, err := that.players.CreateOrGetPlayer(ctx, username)
	if err != nil {
		return entity.ParticipantView{}, fmt.Errorf("failed to create player: %w", err)
	}

	stats, err := that.players.GetStats(ctx, playerID)
	if err != nil {
		return entity.ParticipantView{}, fmt.Errorf("failed to get player stats: %w", err)
	}

	now := that.clock.Now()

	err = that.sessions.AddSession(ctx, entity.Session{
		ConnID:        connID,
		PlayerID:      playerID,
		Username:      username,
		ConnectedAt:   now,
		LastHeartbeat: now,
	})
	if err != nil {
		return entity.ParticipantView{}, fmt.Errorf("failed to add session: %w", err)
	}

	that.mu.Lock()
	if participant, ok := that.participants[playerID]; ok {
		// the newest connection wins, the old one is no longer addressable
		delete(that.connToPlayer, participant.ConnID)
		participant.ConnID = connID
		participant.Username = username
	} else {
		that.participants[playerID] = &entity.Participant{
			PlayerID: playerID,
			Username: username,
			ConnID:   connID,
		}
	}
	that.connToPlayer[connID] = playerID
	that.nameToPlayer[strings.ToLower(username)] = playerID
	that.mu.Unlock()

	log.Info("player registered", "playerID", playerID)

	return entity.ParticipantView{
		ID:       playerID,
		Username: username,
		Stats:    stats,
	}, nil
}

// Unregister - drops the binding of connID. The participant is returned only when
// connID was its current connection, so the player is now offline.
func (that *Directory) Unregister(ctx context.Context, connID string) (entity.Participant, bool) {
	log := that.logger.With("method", "Unregister", "connID", connID)

	if err := that.sessions.RemoveSession(ctx, connID); err != nil {
		log.Error("failed to remove session", "error", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	playerID, ok := that.connToPlayer[connID]
	if !ok {
		return entity.Participant{}, false
	}

	delete(that.connToPlayer, connID)

	participant, ok := that.participants[playerID]
	if !ok || participant.ConnID != connID {
		return entity.Participant{}, false
	}

	delete(that.participants, playerID)

	nameKey := strings.ToLower(participant.Username)
	if that.nameToPlayer[nameKey] == playerID {
		delete(that.nameToPlayer, nameKey)
	}

	return *participant, true
}

func (that *Directory) ByConn(connID string) (entity.Participant, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	playerID, ok := that.connToPlayer[connID]
	if !ok {
		return entity.Participant{}, false
	}

	return that.byIDLocked(playerID)
}

func (that *Directory) ByID(playerID string) (entity.Participant, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.byIDLocked(playerID)
}

// ByName - case-insensitive lookup among online players.
func (that *Directory) ByName(username string) (entity.Participant, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	playerID, ok := that.nameToPlayer[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return entity.Participant{}, false
	}

	return that.byIDLocked(playerID)
}

func (that *Directory) byIDLocked(playerID string) (entity.Participant, bool) {
	participant, ok := that.participants[playerID]
	if !ok {
		return entity.Participant{}, false
	}

	return *participant, true
}

func (that *Directory) IsOnline(playerID string) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.participants[playerID]

	return ok
}

func (that *Directory) ConnOf(playerID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	participant, ok := that.participants[playerID]
	if !ok {
		return "", false
	}

	return participant.ConnID, true
}

func (that *Directory) SetGame(playerID, gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if participant, ok := that.participants[playerID]; ok {
		participant.GameID = gameID
	}
}

// ClearGame - only clears when the player is still bound to gameID.
func (that *Directory) ClearGame(playerID, gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if participant, ok := that.participants[playerID]; ok && participant.GameID == gameID {
		participant.GameID = ""
	}
}

// Heartbeat - refreshes the session of a registered connection. Unknown connections are ignored.
func (that *Directory) Heartbeat(ctx context.Context, connID string) error {
	that.mu.RLock()
	_, ok := that.connToPlayer[connID]
	that.mu.RUnlock()

	if !ok {
		return nil
	}

	if err := that.sessions.UpdateHeartbeat(ctx, connID, that.clock.Now()); err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}

	return nil
}

// ListActive - players with a recent heartbeat, one entry per player, ordered by name.
func (that *Directory) ListActive(ctx context.Context) ([]entity.ActivePlayer, error) {
	log := that.logger.With("method", "ListActive")

	sessions, err := that.sessions.ActiveSessions(ctx, that.clock.Now().Add(-that.heartbeatWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	newest := make(map[string]entity.Session, len(sessions))
	for _, session := range sessions {
		if current, ok := newest[session.PlayerID]; !ok || session.LastHeartbeat.After(current.LastHeartbeat) {
			newest[session.PlayerID] = session
		}
	}

	players := make([]entity.ActivePlayer, 0, len(newest))
	for playerID, session := range newest {
		stats, statsErr := that.players.GetStats(ctx, playerID)
		if statsErr != nil {
			log.Warn("failed to get player stats", "playerID", playerID, "error", statsErr)
		}

		players = append(players, entity.ActivePlayer{
			PlayerID: playerID,
			Username: session.Username,
			Wins:     stats.Wins,
			Losses:   stats.Losses,
			Draws:    stats.Draws,
		})
	}

	sort.Slice(players, func(i, j int) bool {
		return strings.ToLower(players[i].Username) < strings.ToLower(players[j].Username)
	})

	return players, nil
}

// CleanupStale - removes session records without a heartbeat inside the window.
func (that *Directory) CleanupStale(ctx context.Context) (int64, error) {
	removed, err := that.sessions.CleanupStaleSessions(ctx, that.clock.Now().Add(-that.heartbeatWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup sessions: %w", err)
	}

	return removed, nil
}
