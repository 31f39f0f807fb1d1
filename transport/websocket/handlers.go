package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var (
	errInternal      = errors.New("internal server error")
	errMissingCoords = errors.New("row and col are required")
)

// publicErrors are shown to the client verbatim, anything else becomes errInternal.
var publicErrors = []error{
	errMissingCoords,

	apperror.ErrInvalidUsername,
	apperror.ErrUsernameLength,
	apperror.ErrInvalidCharacters,
	apperror.ErrInappropriateContent,
	apperror.ErrNotRegistered,

	apperror.ErrTargetNotFound,
	apperror.ErrTargetBusy,
	apperror.ErrCannotChallengeSelf,
	apperror.ErrInvalidBoardSize,
	apperror.ErrChallengeNotFound,
	apperror.ErrNotTargetOfChallenge,
	apperror.ErrChallengerBusy,
	apperror.ErrChallengerOffline,
	apperror.ErrNoRecentGame,

	apperror.ErrGameNotFound,
	apperror.ErrGameNotActive,
	apperror.ErrNotYourTurn,
	apperror.ErrOutOfBounds,
	apperror.ErrCellOccupied,
	apperror.ErrGameAlreadyEnding,
}

func errorMessage(err error) string {
	for _, public := range publicErrors {
		if errors.Is(err, public) {
			return public.Error()
		}
	}

	return errInternal.Error()
}

func (that *Server) handleRegister(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.Register(ctx, connID, payload.Username)
}

func (that *Server) handleChallengeSend(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.Challenge(ctx, connID, payload.TargetUsername, payload.BoardSize)
}

func (that *Server) handleChallengeAccept(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.AcceptChallenge(ctx, connID, payload.ChallengeID)
}

func (that *Server) handleChallengeDecline(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.DeclineChallenge(ctx, connID, payload.ChallengeID)
}

func (that *Server) handleGameMove(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	if payload.Row == nil || payload.Col == nil {
		return nil, errMissingCoords
	}

	return that.lobby.Move(ctx, connID, payload.GameID, *payload.Row, *payload.Col)
}

func (that *Server) handleGameSurrender(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.Surrender(ctx, connID, payload.GameID)
}

func (that *Server) handleRematchSend(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.SendRematch(ctx, connID, payload.OpponentID, payload.BoardSize)
}

func (that *Server) handleRematchAccept(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.AcceptRematch(ctx, connID, payload.RematchID)
}

func (that *Server) handleRematchDecline(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error) {
	return that.lobby.DeclineRematch(ctx, connID, payload.RematchID)
}

func (that *Server) handleHeartbeat(ctx context.Context, connID string, _ Payload) ([]entity.Notification, error) {
	return that.lobby.Heartbeat(ctx, connID)
}

func (that *Server) handleActivePlayers(ctx context.Context, connID string, _ Payload) ([]entity.Notification, error) {
	return that.lobby.ActivePlayers(ctx, connID)
}
