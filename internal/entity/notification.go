package entity

// outbound actions.
const (
	ActionRegister             = "register"
	ActionActivePlayers        = "players:active"
	ActionChallengeSent        = "challenge:sent"
	ActionChallengeReceived    = "challenge:received"
	ActionChallengeDeclined    = "challenge:declined"
	ActionGameStarted          = "game:started"
	ActionOpponentMove         = "game:opponent_move"
	ActionMoveResult           = "game:move"
	ActionGameEnded            = "game:ended"
	ActionOpponentDisconnected = "game:opponent_disconnected"
	ActionOpponentReconnected  = "game:opponent_reconnected"
	ActionRematchSent          = "rematch:sent"
	ActionRematchRequest       = "rematch:request"
	ActionRematchAccepted      = "rematch:accepted"
	ActionRematchDeclined      = "rematch:declined"
)

// Notification is a message for one connection, one player, or everyone.
type Notification struct {
	ConnID    string
	PlayerID  string
	Broadcast bool

	Action  string
	Payload any
}

func ToConn(connID, action string, payload any) Notification {
	return Notification{ConnID: connID, Action: action, Payload: payload}
}

func ToPlayer(playerID, action string, payload any) Notification {
	return Notification{PlayerID: playerID, Action: action, Payload: payload}
}

func ToAll(action string, payload any) Notification {
	return Notification{Broadcast: true, Action: action, Payload: payload}
}

type RegistrationResult struct {
	Success    bool             `json:"success"`
	Player     *ParticipantView `json:"player,omitempty"`
	ActiveGame *GameView        `json:"activeGame"`
}

type ChallengeSent struct {
	Success     bool   `json:"success"`
	ChallengeID string `json:"challengeId"`
	Message     string `json:"message"`
}

type ChallengeReceived struct {
	ChallengeID string `json:"challengeId"`
	From        string `json:"from"`
	FromID      string `json:"fromId"`
	BoardSize   int    `json:"boardSize"`
}

type RematchRequest struct {
	RematchID string `json:"rematchId"`
	From      string `json:"from"`
	FromID    string `json:"fromId"`
	BoardSize int    `json:"boardSize"`
}

type DeclinedBy struct {
	By string `json:"by"`
}

type OpponentMove struct {
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol string `json:"symbol"`
}

type MoveResult struct {
	Success  bool   `json:"success"`
	GameID   string `json:"gameId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Symbol   string `json:"symbol"`
	GameOver bool   `json:"gameOver"`
	Winner   bool   `json:"winner,omitempty"`
	Draw     bool   `json:"draw,omitempty"`
}

type GameEnded struct {
	GameID  string `json:"gameId"`
	Reason  string `json:"reason"`
	Winner  string `json:"winner,omitempty"`
	Message string `json:"message,omitempty"`
	Stats   Stats  `json:"stats"`
}

type OpponentDisconnected struct {
	GameID   string `json:"gameId"`
	Message  string `json:"message"`
	WaitTime int    `json:"waitTime"`
}

type OpponentReconnected struct {
	GameID  string `json:"gameId"`
	Message string `json:"message"`
}
