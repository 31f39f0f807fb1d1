package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordedGame(ctx context.Context, t *testing.T, players PlayerRepository) *entity.Game {
	t.Helper()

	aliceID, err := players.CreateOrGetPlayer(ctx, "alice")
	require.NoError(t, err)

	bobID, err := players.CreateOrGetPlayer(ctx, "bob")
	require.NoError(t, err)

	return entity.NewGame(
		entity.Participant{PlayerID: aliceID, Username: "alice"},
		entity.Participant{PlayerID: bobID, Username: "bob"},
		entity.DefaultBoardSize,
		gomoku.SymbolX,
	)
}

func TestGameRepository_CreateGame(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage)
	gameRepo := NewGameRepository(st.Storage)

	// Given: a new game between two players
	game := newRecordedGame(ctx, t, playerRepo)

	// When: CreateGame is called
	id, err := gameRepo.CreateGame(ctx, game)
	require.NoError(t, err)

	// Then: the stored record is active and carries both players
	record, err := gameRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, entity.StateActive, record.State)
	assert.Equal(t, game.Player1ID, record.Player1ID)
	assert.Equal(t, game.Player2ID, record.Player2ID)
	assert.Equal(t, entity.DefaultBoardSize, record.BoardSize)
	assert.Nil(t, record.EndedAt)
}

func TestGameRepository_GetByID_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// When: GetByID is called with non-existent ID
	_, err := gameRepo.GetByID(ctx, "9999999")

	// Then: an ErrGameNotFound error should be returned
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestGameRepository_RecordMove(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage)
	gameRepo := NewGameRepository(st.Storage)

	game := newRecordedGame(ctx, t, playerRepo)

	id, err := gameRepo.CreateGame(ctx, game)
	require.NoError(t, err)

	// When: two moves are recorded
	require.NoError(t, gameRepo.RecordMove(ctx, entity.Move{GameID: id, PlayerID: game.Player1ID, Row: 7, Col: 7, Symbol: "X", MoveNumber: 1}))
	require.NoError(t, gameRepo.RecordMove(ctx, entity.Move{GameID: id, PlayerID: game.Player2ID, Row: 7, Col: 8, Symbol: "O", MoveNumber: 2}))

	// Then: they come back in order
	moves, err := gameRepo.GetMoves(ctx, id)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, 1, moves[0].MoveNumber)
	assert.Equal(t, 8, moves[1].Col)
	assert.Equal(t, game.Player2ID, moves[1].PlayerID)
}

func TestGameRepository_Finish(t *testing.T) {
	t.Run("CompleteGame_Win", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)
		gameRepo := NewGameRepository(st.Storage)

		game := newRecordedGame(ctx, t, playerRepo)
		id, err := gameRepo.CreateGame(ctx, game)
		require.NoError(t, err)

		// When: player one wins
		require.NoError(t, gameRepo.CompleteGame(ctx, id, game.Player1ID))

		// Then: tallies and record are updated
		winner, err := playerRepo.GetStats(ctx, game.Player1ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Wins: 1}, winner)

		loser, err := playerRepo.GetStats(ctx, game.Player2ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Losses: 1}, loser)

		record, err := gameRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StateCompleted, record.State)
		assert.Equal(t, game.Player1ID, record.WinnerID)
		assert.NotNil(t, record.EndedAt)
	})

	t.Run("CompleteGame_Draw", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)
		gameRepo := NewGameRepository(st.Storage)

		game := newRecordedGame(ctx, t, playerRepo)
		id, err := gameRepo.CreateGame(ctx, game)
		require.NoError(t, err)

		// When: the game is completed without a winner
		require.NoError(t, gameRepo.CompleteGame(ctx, id, ""))

		// Then: both players get a draw
		for _, playerID := range []string{game.Player1ID, game.Player2ID} {
			stats, err := playerRepo.GetStats(ctx, playerID)
			require.NoError(t, err)
			assert.Equal(t, entity.Stats{Draws: 1}, stats)
		}

		record, err := gameRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, record.WinnerID)
	})

	t.Run("AbandonGame_OnlyOnce", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)
		gameRepo := NewGameRepository(st.Storage)

		game := newRecordedGame(ctx, t, playerRepo)
		id, err := gameRepo.CreateGame(ctx, game)
		require.NoError(t, err)

		require.NoError(t, gameRepo.AbandonGame(ctx, id, game.Player2ID))

		// When: the same game is finished a second time
		err = gameRepo.CompleteGame(ctx, id, game.Player1ID)

		// Then: it is refused and tallies stay as they were
		require.ErrorIs(t, err, ErrGameAlreadyEnded)

		stats, err := playerRepo.GetStats(ctx, game.Player2ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Wins: 1}, stats)

		record, err := gameRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StateAbandoned, record.State)
	})
}
