package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type gameRoster interface {
	SetGame(playerID, gameID string)
	ClearGame(playerID, gameID string)
}

// match serializes every command on one live game.
type match struct {
	mu   sync.Mutex
	game *entity.Game
}

// Coordinator owns the live games.
//
// Lock order is match, then registry. The registry lock is never held while
// waiting for a match lock or for storage.
type Coordinator struct {
	logger *slog.Logger

	roster  gameRoster
	players playerStore
	games   gameStore
	symbols symbolSource
	clock   Clock

	storeTimeout time.Duration

	mu           sync.RWMutex
	live         map[string]*match
	byPlayer     map[string]string // player id to game id, "" while the game is being created
	lastOpponent map[string]opponentRecord
	ended        map[string]time.Time // game id to end time
}

type opponentRecord struct {
	opponentID string
	endedAt    time.Time
}

func NewCoordinator(
	logger *slog.Logger,
	roster gameRoster,
	players playerStore,
	games gameStore,
	symbols symbolSource,
	clock Clock,
	storeTimeout time.Duration,
) *Coordinator {
	return &Coordinator{
		logger: logger,

		roster:  roster,
		players: players,
		games:   games,
		symbols: symbols,
		clock:   clock,

		storeTimeout: storeTimeout,

		live:         make(map[string]*match),
		byPlayer:     make(map[string]string),
		lastOpponent: make(map[string]opponentRecord),
		ended:        make(map[string]time.Time),
	}
}

func (that *Coordinator) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if that.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, that.storeTimeout)
}

// CreateGame - starts a game between two free players. player1 moves first.
func (that *Coordinator) CreateGame(ctx context.Context, player1, player2 entity.Participant, boardSize int) ([]entity.Notification, error) {
	log := that.logger.With("method", "CreateGame", "player1", player1.PlayerID, "player2", player2.PlayerID)

	that.mu.Lock()
	if _, busy := that.byPlayer[player1.PlayerID]; busy {
		that.mu.Unlock()
		return nil, apperror.ErrChallengerBusy
	}

	if _, busy := that.byPlayer[player2.PlayerID]; busy {
		that.mu.Unlock()
		return nil, apperror.ErrTargetBusy
	}

	that.byPlayer[player1.PlayerID] = ""
	that.byPlayer[player2.PlayerID] = ""

	symbol := gomoku.SymbolX
	if that.symbols.Intn(2) == 1 {
		symbol = gomoku.SymbolO
	}
	that.mu.Unlock()

	game := entity.NewGame(player1, player2, boardSize, symbol)
	game.CreatedAt = that.clock.Now()

	storeCtx, cancel := that.storeContext(ctx)
	defer cancel()

	gameID, err := that.games.CreateGame(storeCtx, game)
	if err != nil {
		that.mu.Lock()
		delete(that.byPlayer, player1.PlayerID)
		delete(that.byPlayer, player2.PlayerID)
		that.mu.Unlock()

		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.ID = gameID

	that.mu.Lock()
	that.live[gameID] = &match{game: game}
	that.byPlayer[player1.PlayerID] = gameID
	that.byPlayer[player2.PlayerID] = gameID
	that.mu.Unlock()

	that.roster.SetGame(player1.PlayerID, gameID)
	that.roster.SetGame(player2.PlayerID, gameID)

	log.Info("game started", "gameID", gameID, "boardSize", boardSize)

	return []entity.Notification{
		entity.ToPlayer(player1.PlayerID, entity.ActionGameStarted, game.ViewFor(player1.PlayerID)),
		entity.ToPlayer(player2.PlayerID, entity.ActionGameStarted, game.ViewFor(player2.PlayerID)),
	}, nil
}

// ActiveGame - a snapshot of the live game of playerID.
func (that *Coordinator) ActiveGame(playerID string) (entity.Game, bool) {
	that.mu.RLock()
	gameID := that.byPlayer[playerID]
	m, ok := that.live[gameID]
	that.mu.RUnlock()

	if !ok {
		return entity.Game{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.game.IsActive() || !m.game.HasPlayer(playerID) {
		return entity.Game{}, false
	}

	snapshot := *m.game
	snapshot.Board = m.game.Board.Clone()

	return snapshot, true
}

// InGame - reports whether playerID is playing or about to play.
func (that *Coordinator) InGame(playerID string) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.byPlayer[playerID]

	return ok
}

// LastOpponent - the opponent of the most recently finished game of playerID.
func (that *Coordinator) LastOpponent(playerID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.lastOpponent[playerID]

	return record.opponentID, ok
}

// lookup - endedErr is returned for games that existed and are gone.
func (that *Coordinator) lookup(gameID string, endedErr error) (*match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if m, ok := that.live[gameID]; ok {
		return m, nil
	}

	if _, ok := that.ended[gameID]; ok {
		return nil, endedErr
	}

	return nil, apperror.ErrGameNotFound
}

// ApplyMove - places the stone of playerID and settles the game when it is over.
func (that *Coordinator) ApplyMove(ctx context.Context, gameID, playerID string, row, col int) ([]entity.Notification, error) {
	log := that.logger.With("method", "ApplyMove", "gameID", gameID, "playerID", playerID)

	m, err := that.lookup(gameID, apperror.ErrGameNotActive)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	game := m.game

	if !game.IsActive() {
		return nil, apperror.ErrGameNotActive
	}

	if !game.HasPlayer(playerID) || game.CurrentTurnPlayerID != playerID {
		return nil, apperror.ErrNotYourTurn
	}

	symbol := game.SymbolOf(playerID)

	board, err := gomoku.ApplyMove(game.Board, row, col, symbol)
	if err != nil {
		return nil, err
	}

	game.Board = board
	game.MoveCount++

	won := gomoku.CheckWin(board, row, col)
	draw := !won && gomoku.CheckDraw(board)

	if won || draw {
		game.End(entity.StateCompleted)
	}

	storeCtx, cancel := that.storeContext(ctx)
	defer cancel()

	err = that.games.RecordMove(storeCtx, entity.Move{
		GameID:     gameID,
		PlayerID:   playerID,
		Row:        row,
		Col:        col,
		Symbol:     symbol,
		MoveNumber: game.MoveCount,
		PlayedAt:   that.clock.Now(),
	})
	if err != nil {
		log.Error("failed to record move", "error", err)
	}

	opponentID := game.OpponentOf(playerID)

	notifications := []entity.Notification{
		entity.ToPlayer(playerID, entity.ActionMoveResult, entity.MoveResult{
			Success:  true,
			GameID:   gameID,
			Row:      row,
			Col:      col,
			Symbol:   symbol,
			GameOver: won || draw,
			Winner:   won,
			Draw:     draw,
		}),
		entity.ToPlayer(opponentID, entity.ActionOpponentMove, entity.OpponentMove{
			GameID: gameID,
			Row:    row,
			Col:    col,
			Symbol: symbol,
		}),
	}

	switch {
	case won:
		if err = that.games.CompleteGame(storeCtx, gameID, playerID); err != nil {
			log.Error("failed to complete game", "error", err)
		}

		notifications = append(notifications,
			that.gameEnded(storeCtx, gameID, playerID, entity.ReasonWin, playerID, ""),
			that.gameEnded(storeCtx, gameID, opponentID, entity.ReasonLoss, playerID, ""),
		)

		that.release(game)

		log.Info("game won", "moves", game.MoveCount)
	case draw:
		if err = that.games.CompleteGame(storeCtx, gameID, ""); err != nil {
			log.Error("failed to complete game", "error", err)
		}

		notifications = append(notifications,
			that.gameEnded(storeCtx, gameID, playerID, entity.ReasonDraw, "", ""),
			that.gameEnded(storeCtx, gameID, opponentID, entity.ReasonDraw, "", ""),
		)

		that.release(game)

		log.Info("game drawn", "moves", game.MoveCount)
	default:
		game.CurrentTurnPlayerID = opponentID
	}

	return notifications, nil
}

// Surrender - playerID gives the game to the opponent.
func (that *Coordinator) Surrender(ctx context.Context, gameID, playerID string) ([]entity.Notification, error) {
	log := that.logger.With("method", "Surrender", "gameID", gameID, "playerID", playerID)

	m, err := that.lookup(gameID, apperror.ErrGameAlreadyEnding)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	game := m.game

	if !game.HasPlayer(playerID) {
		return nil, apperror.ErrGameNotFound
	}

	if !game.End(entity.StateAbandoned) {
		return nil, apperror.ErrGameAlreadyEnding
	}

	winnerID := game.OpponentOf(playerID)

	storeCtx, cancel := that.storeContext(ctx)
	defer cancel()

	if err = that.games.AbandonGame(storeCtx, gameID, winnerID); err != nil {
		log.Error("failed to abandon game", "error", err)
	}

	notifications := []entity.Notification{
		that.gameEnded(storeCtx, gameID, playerID, entity.ReasonSurrender, winnerID, "You surrendered"),
		that.gameEnded(storeCtx, gameID, winnerID, entity.ReasonWin, winnerID, game.NameOf(playerID)+" surrendered"),
	}

	that.release(game)

	log.Info("game surrendered")

	return notifications, nil
}

// Forfeit - loserID did not come back in time.
func (that *Coordinator) Forfeit(ctx context.Context, gameID, loserID string) ([]entity.Notification, error) {
	log := that.logger.With("method", "Forfeit", "gameID", gameID, "playerID", loserID)

	m, err := that.lookup(gameID, apperror.ErrGameNotActive)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	game := m.game

	if !game.HasPlayer(loserID) {
		return nil, apperror.ErrGameNotFound
	}

	if !game.End(entity.StateAbandoned) {
		return nil, apperror.ErrGameNotActive
	}

	winnerID := game.OpponentOf(loserID)

	storeCtx, cancel := that.storeContext(ctx)
	defer cancel()

	if err = that.games.AbandonGame(storeCtx, gameID, winnerID); err != nil {
		log.Error("failed to abandon game", "error", err)
	}

	notifications := []entity.Notification{
		that.gameEnded(storeCtx, gameID, winnerID, entity.ReasonOpponentAbandoned, winnerID, game.NameOf(loserID)+" left the game"),
		that.gameEnded(storeCtx, gameID, loserID, entity.ReasonLoss, winnerID, ""),
	}

	that.release(game)

	log.Info("game forfeited")

	return notifications, nil
}

// gameEnded - the game:ended notification for one player, with their refreshed stats.
func (that *Coordinator) gameEnded(ctx context.Context, gameID, playerID, reason, winnerID, message string) entity.Notification {
	stats, err := that.players.GetStats(ctx, playerID)
	if err != nil {
		that.logger.Error("failed to get player stats", "method", "gameEnded", "playerID", playerID, "error", err)
	}

	return entity.ToPlayer(playerID, entity.ActionGameEnded, entity.GameEnded{
		GameID:  gameID,
		Reason:  reason,
		Winner:  winnerID,
		Message: message,
		Stats:   stats,
	})
}

// release - frees both players of a finished game. Caller holds the match lock.
func (that *Coordinator) release(game *entity.Game) {
	that.mu.Lock()
	delete(that.live, game.ID)

	for _, playerID := range []string{game.Player1ID, game.Player2ID} {
		if that.byPlayer[playerID] == game.ID {
			delete(that.byPlayer, playerID)
		}
	}

	endedAt := that.clock.Now()
	that.lastOpponent[game.Player1ID] = opponentRecord{opponentID: game.Player2ID, endedAt: endedAt}
	that.lastOpponent[game.Player2ID] = opponentRecord{opponentID: game.Player1ID, endedAt: endedAt}
	that.ended[game.ID] = endedAt
	that.mu.Unlock()

	that.roster.ClearGame(game.Player1ID, game.ID)
	that.roster.ClearGame(game.Player2ID, game.ID)
}

// Prune - forgets games that ended more than maxAge ago. Commands on them then get ErrGameNotFound
// and their players can no longer ask each other for a rematch. Returns the number of games dropped.
func (that *Coordinator) Prune(maxAge time.Duration) int {
	cutoff := that.clock.Now().Add(-maxAge)

	that.mu.Lock()
	defer that.mu.Unlock()

	pruned := 0
	for gameID, endedAt := range that.ended {
		if endedAt.Before(cutoff) {
			delete(that.ended, gameID)
			pruned++
		}
	}

	for playerID, record := range that.lastOpponent {
		if record.endedAt.Before(cutoff) {
			delete(that.lastOpponent, playerID)
		}
	}

	return pruned
}

// LiveGames - number of games in progress.
func (that *Coordinator) LiveGames() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.live)
}
