package apperror

import "errors"

// registration.
var (
	ErrInvalidUsername      = errors.New("invalid username")
	ErrUsernameLength       = errors.New("username must be 3-20 characters")
	ErrInvalidCharacters    = errors.New("username can only contain letters, numbers, underscores, and hyphens")
	ErrInappropriateContent = errors.New("please use a family-friendly username")
	ErrNotRegistered        = errors.New("not registered")
)

// challenges and rematches.
var (
	ErrTargetNotFound       = errors.New("player not found")
	ErrTargetBusy           = errors.New("player is already in a game")
	ErrCannotChallengeSelf  = errors.New("you cannot challenge yourself")
	ErrInvalidBoardSize     = errors.New("invalid board size")
	ErrChallengeNotFound    = errors.New("challenge not found or expired")
	ErrNotTargetOfChallenge = errors.New("not your challenge")
	ErrChallengerBusy       = errors.New("challenger is already in a game")
	ErrChallengerOffline    = errors.New("challenger no longer online")
	ErrNoRecentGame         = errors.New("no finished game with this opponent")
)

// games.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameNotActive     = errors.New("game not active")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrOutOfBounds       = errors.New("invalid position")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameAlreadyEnding = errors.New("game is already ending")
)
