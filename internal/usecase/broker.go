package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const rematchPrefix = "rematch_"

type participantLookup interface {
	ByID(playerID string) (entity.Participant, bool)
	ByName(username string) (entity.Participant, bool)
}

type gameStarter interface {
	CreateGame(ctx context.Context, player1, player2 entity.Participant, boardSize int) ([]entity.Notification, error)
	LastOpponent(playerID string) (string, bool)
}

type BoardSizes struct {
	Default int
	Min     int
	Max     int
}

// Broker keeps pending challenges and rematch requests until they are answered or expire.
type Broker struct {
	logger *slog.Logger

	clock   Clock
	lookup  participantLookup
	starter gameStarter
	ttl     time.Duration
	sizes   BoardSizes

	mu      sync.Mutex
	pending map[string]*entity.Challenge
}

func NewBroker(
	logger *slog.Logger,
	clock Clock,
	lookup participantLookup,
	starter gameStarter,
	ttl time.Duration,
	sizes BoardSizes,
) *Broker {
	return &Broker{
		logger: logger,

		clock:   clock,
		lookup:  lookup,
		starter: starter,
		ttl:     ttl,
		sizes:   sizes,

		pending: make(map[string]*entity.Challenge),
	}
}

// TTL - how long a proposal stays open.
func (that *Broker) TTL() time.Duration {
	return that.ttl
}

func (that *Broker) boardSize(requested int) (int, error) {
	if requested == 0 {
		return that.sizes.Default, nil
	}

	if requested < that.sizes.Min || requested > that.sizes.Max {
		return 0, apperror.ErrInvalidBoardSize
	}

	return requested, nil
}

// Propose - challenges an online player by name.
func (that *Broker) Propose(fromID, targetName string, boardSize int) ([]entity.Notification, error) {
	log := that.logger.With("method", "Propose", "playerID", fromID)

	from, ok := that.lookup.ByID(fromID)
	if !ok {
		return nil, apperror.ErrNotRegistered
	}

	size, err := that.boardSize(boardSize)
	if err != nil {
		return nil, err
	}

	target, ok := that.lookup.ByName(targetName)
	if !ok {
		return nil, apperror.ErrTargetNotFound
	}

	if target.PlayerID == from.PlayerID {
		return nil, apperror.ErrCannotChallengeSelf
	}

	if target.InGame() {
		return nil, apperror.ErrTargetBusy
	}

	challenge := that.store(from, target, size, uuid.NewString(), false)

	log.Info("challenge sent", "challengeID", challenge.ID, "targetID", target.PlayerID)

	return []entity.Notification{
		entity.ToPlayer(target.PlayerID, entity.ActionChallengeReceived, entity.ChallengeReceived{
			ChallengeID: challenge.ID,
			From:        from.Username,
			FromID:      from.PlayerID,
			BoardSize:   size,
		}),
		entity.ToPlayer(from.PlayerID, entity.ActionChallengeSent, entity.ChallengeSent{
			Success:     true,
			ChallengeID: challenge.ID,
			Message:     "Challenge sent",
		}),
	}, nil
}

// Accept - the target of a challenge starts the game.
func (that *Broker) Accept(ctx context.Context, challengeID, byID string) ([]entity.Notification, error) {
	that.mu.Lock()

	challenge, err := that.takeLocked(challengeID, false)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	if challenge.TargetID != byID {
		that.mu.Unlock()
		return nil, apperror.ErrNotTargetOfChallenge
	}

	challenger, ok := that.lookup.ByID(challenge.ChallengerID)
	if !ok {
		delete(that.pending, challengeID)
		that.mu.Unlock()
		return nil, apperror.ErrChallengerOffline
	}

	if challenger.InGame() {
		delete(that.pending, challengeID)
		that.mu.Unlock()
		return nil, apperror.ErrChallengerBusy
	}

	target, ok := that.lookup.ByID(byID)
	if !ok {
		that.mu.Unlock()
		return nil, apperror.ErrNotRegistered
	}

	if target.InGame() {
		that.mu.Unlock()
		return nil, apperror.ErrTargetBusy
	}

	delete(that.pending, challengeID)
	that.mu.Unlock()

	return that.starter.CreateGame(ctx, challenger, target, challenge.BoardSize)
}

// Decline - unknown ids are ignored.
func (that *Broker) Decline(challengeID, byID string) []entity.Notification {
	return that.decline(challengeID, byID, false, entity.ActionChallengeDeclined)
}

// ProposeRematch - asks the last opponent of fromID for another game.
func (that *Broker) ProposeRematch(fromID, opponentID string, boardSize int) ([]entity.Notification, error) {
	log := that.logger.With("method", "ProposeRematch", "playerID", fromID)

	from, ok := that.lookup.ByID(fromID)
	if !ok {
		return nil, apperror.ErrNotRegistered
	}

	if last, ok := that.starter.LastOpponent(fromID); !ok || last != opponentID {
		return nil, apperror.ErrNoRecentGame
	}

	size, err := that.boardSize(boardSize)
	if err != nil {
		return nil, err
	}

	opponent, ok := that.lookup.ByID(opponentID)
	if !ok {
		return nil, apperror.ErrTargetNotFound
	}

	rematch := that.store(from, opponent, size, rematchPrefix+uuid.NewString(), true)

	log.Info("rematch sent", "rematchID", rematch.ID, "opponentID", opponentID)

	return []entity.Notification{
		entity.ToPlayer(opponent.PlayerID, entity.ActionRematchRequest, entity.RematchRequest{
			RematchID: rematch.ID,
			From:      from.Username,
			FromID:    from.PlayerID,
			BoardSize: size,
		}),
		entity.ToPlayer(from.PlayerID, entity.ActionRematchSent, entity.ChallengeSent{
			Success:     true,
			ChallengeID: rematch.ID,
			Message:     "Rematch request sent",
		}),
	}, nil
}

// AcceptRematch - the proposer gets rematch:accepted in place of game:started.
func (that *Broker) AcceptRematch(ctx context.Context, rematchID, byID string) ([]entity.Notification, error) {
	that.mu.Lock()

	rematch, err := that.takeLocked(rematchID, true)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	acceptor, ok := that.lookup.ByID(byID)
	if !ok {
		that.mu.Unlock()
		return nil, apperror.ErrNotRegistered
	}

	if acceptor.InGame() {
		that.mu.Unlock()
		return nil, apperror.ErrTargetBusy
	}

	if rematch.TargetID != byID {
		that.mu.Unlock()
		return nil, apperror.ErrNotTargetOfChallenge
	}

	challenger, ok := that.lookup.ByID(rematch.ChallengerID)
	if !ok {
		delete(that.pending, rematchID)
		that.mu.Unlock()
		return nil, apperror.ErrChallengerOffline
	}

	if challenger.InGame() {
		delete(that.pending, rematchID)
		that.mu.Unlock()
		return nil, apperror.ErrChallengerBusy
	}

	delete(that.pending, rematchID)
	that.mu.Unlock()

	notifications, err := that.starter.CreateGame(ctx, challenger, acceptor, rematch.BoardSize)
	if err != nil {
		return nil, err
	}

	for i := range notifications {
		if notifications[i].PlayerID == challenger.PlayerID && notifications[i].Action == entity.ActionGameStarted {
			notifications[i].Action = entity.ActionRematchAccepted
		}
	}

	return notifications, nil
}

func (that *Broker) DeclineRematch(rematchID, byID string) []entity.Notification {
	return that.decline(rematchID, byID, true, entity.ActionRematchDeclined)
}

// Sweep - drops expired proposals and returns how many were dropped.
func (that *Broker) Sweep() int {
	now := that.clock.Now()

	that.mu.Lock()
	defer that.mu.Unlock()

	removed := 0
	for id, challenge := range that.pending {
		if challenge.IsExpired(now, that.ttl) {
			delete(that.pending, id)
			removed++
		}
	}

	return removed
}

// Pending - number of proposals waiting for an answer.
func (that *Broker) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.pending)
}

func (that *Broker) store(from, target entity.Participant, size int, id string, rematch bool) *entity.Challenge {
	challenge := &entity.Challenge{
		ID:             id,
		ChallengerID:   from.PlayerID,
		ChallengerName: from.Username,
		TargetID:       target.PlayerID,
		TargetName:     target.Username,
		BoardSize:      size,
		CreatedAt:      that.clock.Now(),
		Rematch:        rematch,
	}

	that.mu.Lock()
	that.pending[id] = challenge
	that.mu.Unlock()

	return challenge
}

// takeLocked - finds a live proposal of the given kind. Expired ones are dropped on sight.
func (that *Broker) takeLocked(id string, rematch bool) (*entity.Challenge, error) {
	challenge, ok := that.pending[id]
	if !ok || challenge.Rematch != rematch {
		return nil, apperror.ErrChallengeNotFound
	}

	if challenge.IsExpired(that.clock.Now(), that.ttl) {
		delete(that.pending, id)
		return nil, apperror.ErrChallengeNotFound
	}

	return challenge, nil
}

func (that *Broker) decline(id, byID string, rematch bool, action string) []entity.Notification {
	that.mu.Lock()
	challenge, ok := that.pending[id]
	if !ok || challenge.Rematch != rematch || challenge.TargetID != byID {
		that.mu.Unlock()
		return nil
	}
	delete(that.pending, id)
	that.mu.Unlock()

	return []entity.Notification{
		entity.ToPlayer(challenge.ChallengerID, action, entity.DeclinedBy{By: challenge.TargetName}),
	}
}
