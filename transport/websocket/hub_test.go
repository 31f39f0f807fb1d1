package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type mapResolver map[string]string

func (that mapResolver) ConnOf(playerID string) (string, bool) {
	connID, ok := that[playerID]
	return connID, ok
}

func newTestHub(resolver mapResolver) *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), resolver)
}

func receive(t *testing.T, c *client) Message {
	t.Helper()

	select {
	case data := <-c.outbox:
		var message Message
		require.NoError(t, json.Unmarshal(data, &message))
		return message
	default:
		t.Fatalf("no message for %s", c.id)
		return Message{}
	}
}

func TestHub_Send(t *testing.T) {
	t.Run("routes by connection, player and broadcast", func(t *testing.T) {
		// Given:
		hub := newTestHub(mapResolver{"p1": "c1"})
		c1, c2 := newClient("c1", 4), newClient("c2", 4)
		hub.add(c1)
		hub.add(c2)

		// When:
		hub.Send([]entity.Notification{
			entity.ToConn("c2", entity.ActionChallengeSent, entity.ChallengeSent{Success: true}),
			entity.ToPlayer("p1", entity.ActionChallengeReceived, entity.ChallengeReceived{ChallengeID: "x"}),
			entity.ToAll(entity.ActionActivePlayers, map[string]any{"players": []string{}}),
		})

		// Then:
		assert.Equal(t, entity.ActionChallengeSent, receive(t, c2).Action)
		assert.Equal(t, entity.ActionActivePlayers, receive(t, c2).Action)

		message := receive(t, c1)
		assert.Equal(t, entity.ActionChallengeReceived, message.Action)
		assert.JSONEq(t, `{"challengeId":"x","from":"","fromId":"","boardSize":0}`, string(message.Payload))
		assert.Equal(t, entity.ActionActivePlayers, receive(t, c1).Action)
	})

	t.Run("offline player is skipped", func(t *testing.T) {
		hub := newTestHub(mapResolver{})
		c1 := newClient("c1", 4)
		hub.add(c1)

		hub.Send([]entity.Notification{entity.ToPlayer("p9", entity.ActionGameEnded, entity.GameEnded{})})

		assert.Empty(t, c1.outbox)
	})

	t.Run("full outbox drops instead of blocking", func(t *testing.T) {
		hub := newTestHub(mapResolver{})
		c1 := newClient("c1", 1)
		hub.add(c1)

		hub.Send([]entity.Notification{
			entity.ToConn("c1", entity.ActionMoveResult, entity.MoveResult{Row: 1}),
			entity.ToConn("c1", entity.ActionMoveResult, entity.MoveResult{Row: 2}),
		})

		assert.Len(t, c1.outbox, 1)
	})

	t.Run("removed client gets nothing", func(t *testing.T) {
		hub := newTestHub(mapResolver{})
		c1 := newClient("c1", 4)
		hub.add(c1)
		hub.remove("c1")

		hub.Send([]entity.Notification{entity.ToAll(entity.ActionActivePlayers, nil)})

		assert.Empty(t, c1.outbox)
		assert.Equal(t, 0, hub.Clients())

		// a second remove is a no-op
		hub.remove("c1")
	})
}
