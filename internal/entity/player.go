package entity

import "time"

// Participant is a registered player bound to one live connection.
type Participant struct {
	PlayerID string `json:"id"`
	Username string `json:"username"`
	ConnID   string `json:"-"`
	GameID   string `json:"game_id,omitempty"`
}

func (that Participant) InGame() bool {
	return that.GameID != ""
}

type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// ParticipantView is returned to a player after registration.
type ParticipantView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Stats    Stats  `json:"stats"`
}

// ActivePlayer is a roster entry.
type ActivePlayer struct {
	PlayerID string `json:"id"`
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

// Session is the durable trace of one connection.
type Session struct {
	ConnID        string    `json:"conn_id"`
	PlayerID      string    `json:"player_id"`
	Username      string    `json:"username"`
	ConnectedAt   time.Time `json:"connected_at"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}
