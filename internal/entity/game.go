package entity

import (
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	StateActive    = "active"
	StateCompleted = "completed"
	StateAbandoned = "abandoned"
)

// reasons carried by game:ended.
const (
	ReasonWin               = "win"
	ReasonLoss              = "loss"
	ReasonDraw              = "draw"
	ReasonSurrender         = "surrender"
	ReasonOpponentAbandoned = "opponent_abandoned"
)

const DefaultBoardSize = 15

// Game is the authoritative state of a live match.
type Game struct {
	ID string `json:"id"`

	Player1ID     string `json:"player1_id"`
	Player2ID     string `json:"player2_id"`
	Player1Name   string `json:"player1_name"`
	Player2Name   string `json:"player2_name"`
	Player1Symbol string `json:"player1_symbol"`
	Player2Symbol string `json:"player2_symbol"`

	BoardSize           int          `json:"board_size"`
	Board               gomoku.Board `json:"board"`
	CurrentTurnPlayerID string       `json:"current_turn_player_id"`
	MoveCount           int          `json:"move_count"`
	State               string       `json:"state"`
	CreatedAt           time.Time    `json:"created_at"`
}

// NewGame - player1 always moves first, whichever symbol it holds.
func NewGame(player1, player2 Participant, boardSize int, player1Symbol string) *Game {
	return &Game{
		Player1ID:           player1.PlayerID,
		Player2ID:           player2.PlayerID,
		Player1Name:         player1.Username,
		Player2Name:         player2.Username,
		Player1Symbol:       player1Symbol,
		Player2Symbol:       gomoku.OtherSymbol(player1Symbol),
		BoardSize:           boardSize,
		Board:               gomoku.NewBoard(boardSize),
		CurrentTurnPlayerID: player1.PlayerID,
		State:               StateActive,
	}
}

func (that *Game) IsActive() bool {
	return that.State == StateActive
}

func (that *Game) HasPlayer(playerID string) bool {
	return playerID != "" && (that.Player1ID == playerID || that.Player2ID == playerID)
}

func (that *Game) OpponentOf(playerID string) string {
	if that.Player1ID == playerID {
		return that.Player2ID
	}
	return that.Player1ID
}

func (that *Game) NameOf(playerID string) string {
	if that.Player1ID == playerID {
		return that.Player1Name
	}
	return that.Player2Name
}

func (that *Game) SymbolOf(playerID string) string {
	if that.Player1ID == playerID {
		return that.Player1Symbol
	}
	return that.Player2Symbol
}

// End - moves an active game to a terminal state. Returns false when the game has already ended.
func (that *Game) End(state string) bool {
	if !that.IsActive() {
		return false
	}

	that.State = state
	that.CurrentTurnPlayerID = ""

	return true
}

// ViewFor - the game as seen by one of its players, used for game start and resume.
func (that *Game) ViewFor(playerID string) *GameView {
	opponentID := that.OpponentOf(playerID)

	turnSymbol := ""
	if that.CurrentTurnPlayerID != "" {
		turnSymbol = that.SymbolOf(that.CurrentTurnPlayerID)
	}

	return &GameView{
		GameID:            that.ID,
		Opponent:          that.NameOf(opponentID),
		OpponentID:        opponentID,
		YourSymbol:        that.SymbolOf(playerID),
		BoardSize:         that.BoardSize,
		YourTurn:          that.CurrentTurnPlayerID == playerID,
		Board:             that.Board.Clone(),
		CurrentTurnSymbol: turnSymbol,
	}
}

// GameView is what a single participant is allowed to know about a game.
type GameView struct {
	GameID            string       `json:"gameId"`
	Opponent          string       `json:"opponent"`
	OpponentID        string       `json:"opponentId"`
	YourSymbol        string       `json:"yourSymbol"`
	BoardSize         int          `json:"boardSize"`
	YourTurn          bool         `json:"yourTurn"`
	Board             gomoku.Board `json:"board,omitempty"`
	CurrentTurnSymbol string       `json:"currentTurnSymbol,omitempty"`
}

// Move is one placed stone, numbered from 1 within its game.
type Move struct {
	GameID     string    `json:"game_id"`
	PlayerID   string    `json:"player_id"`
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	Symbol     string    `json:"symbol"`
	MoveNumber int       `json:"move_number"`
	PlayedAt   time.Time `json:"played_at"`
}

// GameRecord is the durable summary of a game kept by storage.
type GameRecord struct {
	ID          string     `json:"id"`
	Player1ID   string     `json:"player1_id"`
	Player2ID   string     `json:"player2_id"`
	Player1Name string     `json:"player1_name"`
	Player2Name string     `json:"player2_name"`
	BoardSize   int        `json:"board_size"`
	State       string     `json:"state"`
	WinnerID    string     `json:"winner_id,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

func (that *Game) Record() *GameRecord {
	return &GameRecord{
		ID:          that.ID,
		Player1ID:   that.Player1ID,
		Player2ID:   that.Player2ID,
		Player1Name: that.Player1Name,
		Player2Name: that.Player2Name,
		BoardSize:   that.BoardSize,
		State:       that.State,
		StartedAt:   that.CreatedAt,
	}
}
