package websocket

import (
	"encoding/json"
	"fmt"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload holds the arguments of every inbound action. Each action reads its own fields.
type Payload struct {
	Username       string `json:"username,omitempty"`
	TargetUsername string `json:"targetUsername,omitempty"`
	BoardSize      int    `json:"boardSize,omitempty"`
	ChallengeID    string `json:"challengeId,omitempty"`
	GameID         string `json:"gameId,omitempty"`
	Row            *int   `json:"row,omitempty"`
	Col            *int   `json:"col,omitempty"`
	OpponentID     string `json:"opponentId,omitempty"`
	RematchID      string `json:"rematchId,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
