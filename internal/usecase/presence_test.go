package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestPresence_Detach(t *testing.T) {
	t.Run("Outside of a game nothing happens", func(t *testing.T) {
		w := newWorld(t)
		aliceID := w.register(t, "c1", "alice")

		participant, ok := w.directory.Unregister(context.Background(), "c1")
		require.True(t, ok)
		assert.Equal(t, aliceID, participant.PlayerID)

		assert.Empty(t, w.presence.Detach(participant))
		assert.Equal(t, 0, w.presence.Pending())
	})

	t.Run("The opponent is told how long to wait", func(t *testing.T) {
		w := newWorld(t)
		gameID, _, bobID := w.startGame(t, 15)

		participant, ok := w.directory.Unregister(context.Background(), "c1")
		require.True(t, ok)

		notifications := w.presence.Detach(participant)

		require.Len(t, notifications, 1)
		assert.Equal(t, bobID, notifications[0].PlayerID)
		assert.Equal(t, entity.ActionOpponentDisconnected, notifications[0].Action)
		assert.Equal(t, entity.OpponentDisconnected{GameID: gameID, Message: "alice disconnected", WaitTime: 30}, notifications[0].Payload)
		assert.Equal(t, 1, w.presence.Pending())
	})
}

func TestPresence_Supervise(t *testing.T) {
	t.Run("Online players are left alone", func(t *testing.T) {
		w := newWorld(t)
		_, aliceID, _ := w.startGame(t, 15)

		game, ok := w.coordinator.ActiveGame(aliceID)
		require.True(t, ok)

		assert.Empty(t, w.presence.Supervise(game))
		assert.Equal(t, 0, w.presence.Pending())
	})

	t.Run("An offline player gets a grace period", func(t *testing.T) {
		w := newWorld(t)
		gameID, aliceID, bobID := w.startGame(t, 15)

		game, ok := w.coordinator.ActiveGame(aliceID)
		require.True(t, ok)

		// Given: alice is gone without a detach
		_, ok = w.directory.Unregister(context.Background(), "c1")
		require.True(t, ok)

		// When:
		notifications := w.presence.Supervise(game)

		// Then:
		require.Len(t, notifications, 1)
		assert.Equal(t, bobID, notifications[0].PlayerID)
		assert.Equal(t, entity.OpponentDisconnected{GameID: gameID, Message: "alice disconnected", WaitTime: 30}, notifications[0].Payload)
		assert.Equal(t, 1, w.presence.Pending())

		w.clock.Advance(31 * time.Second)

		_, ok = find(w.notifier.Sent(), bobID, entity.ActionGameEnded)
		assert.True(t, ok)
	})

	t.Run("A running grace period is kept", func(t *testing.T) {
		w := newWorld(t)
		_, aliceID, bobID := w.startGame(t, 15)

		game, ok := w.coordinator.ActiveGame(aliceID)
		require.True(t, ok)

		// Given: alice was detached 20 seconds ago
		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)
		w.clock.Advance(20 * time.Second)

		// When: the game is supervised again
		assert.Empty(t, w.presence.Supervise(game))

		// Then: the original deadline still holds
		w.clock.Advance(11 * time.Second)

		_, ok = find(w.notifier.Sent(), bobID, entity.ActionGameEnded)
		assert.True(t, ok)
	})
}

func TestPresence_GracePeriod(t *testing.T) {
	t.Run("Coming back in time keeps the game", func(t *testing.T) {
		w := newWorld(t)
		gameID, aliceID, _ := w.startGame(t, 15)

		// Given: alice drops out of a running game
		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)

		// When: she is back after 10 seconds
		w.clock.Advance(10 * time.Second)
		w.register(t, "c3", "alice")
		assert.True(t, w.presence.Reattach(aliceID))
		assert.False(t, w.presence.Reattach(aliceID))

		w.clock.Advance(time.Minute)

		// Then: the game is still on
		game, ok := w.coordinator.ActiveGame(aliceID)
		require.True(t, ok)
		assert.Equal(t, gameID, game.ID)
		assert.Empty(t, w.notifier.Sent())
	})

	t.Run("Staying away forfeits the game", func(t *testing.T) {
		w := newWorld(t)
		gameID, aliceID, bobID := w.startGame(t, 15)

		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)

		// When: the grace period runs out
		w.clock.Advance(29 * time.Second)
		assert.Empty(t, w.notifier.Sent())

		w.clock.Advance(2 * time.Second)

		// Then: bob wins by abandonment
		ended, ok := find(w.notifier.Sent(), bobID, entity.ActionGameEnded)
		require.True(t, ok)
		assert.Equal(t, entity.ReasonOpponentAbandoned, ended.Payload.(entity.GameEnded).Reason)

		assert.Equal(t, entity.StateAbandoned, w.store.Record(gameID).State)
		assert.Equal(t, bobID, w.store.Record(gameID).WinnerID)
		assert.False(t, w.coordinator.InGame(aliceID))
		assert.Equal(t, 0, w.presence.Pending())
	})

	t.Run("An online player is never forfeited", func(t *testing.T) {
		w := newWorld(t)
		_, aliceID, _ := w.startGame(t, 15)

		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)

		// Given: alice is back but the timer was not cancelled
		w.register(t, "c3", "alice")

		w.clock.Advance(31 * time.Second)

		_, ok := w.coordinator.ActiveGame(aliceID)
		assert.True(t, ok)
		assert.Empty(t, w.notifier.Sent())
	})

	t.Run("A second disconnect replaces the first timer", func(t *testing.T) {
		w := newWorld(t)
		_, aliceID, _ := w.startGame(t, 15)

		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)

		w.clock.Advance(20 * time.Second)

		w.register(t, "c3", "alice")
		participant, _ = w.directory.Unregister(context.Background(), "c3")
		w.presence.Detach(participant)

		// the first timer would have fired here
		w.clock.Advance(15 * time.Second)
		_, ok := w.coordinator.ActiveGame(aliceID)
		assert.True(t, ok)

		w.clock.Advance(15 * time.Second)
		_, ok = w.coordinator.ActiveGame(aliceID)
		assert.False(t, ok)
	})

	t.Run("Stop cancels everything", func(t *testing.T) {
		w := newWorld(t)
		_, aliceID, _ := w.startGame(t, 15)

		participant, _ := w.directory.Unregister(context.Background(), "c1")
		w.presence.Detach(participant)

		w.presence.Stop()
		w.clock.Advance(time.Minute)

		_, ok := w.coordinator.ActiveGame(aliceID)
		assert.True(t, ok)
	})
}
