package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
)

type stubHealth struct {
	status entity.StorageStatus
}

func (that stubHealth) Check(context.Context) entity.StorageStatus {
	return that.status
}

type stubRoster struct {
	players []entity.ActivePlayer
	err     error
}

func (that stubRoster) ListActive(context.Context) ([]entity.ActivePlayer, error) {
	return that.players, that.err
}

func newTestServer(t *testing.T, health stubHealth, roster stubRoster) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := rest.New(logger, rest.NewHandlers(logger, health, roster))

	testServer := httptest.NewServer(server.Router())
	t.Cleanup(testServer.Close)

	return testServer
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestPing(t *testing.T) {
	testServer := newTestServer(t, stubHealth{}, stubRoster{})

	resp, body := get(t, testServer.URL+"/ping")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestDBStatus(t *testing.T) {
	t.Run("healthy storage", func(t *testing.T) {
		// Given:
		health := stubHealth{status: entity.StorageStatus{Backend: "redis", Connected: true, LatencyMs: 2, WriteCapable: true}}
		testServer := newTestServer(t, health, stubRoster{})

		// When:
		resp, body := get(t, testServer.URL+"/db-status")

		// Then:
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var status entity.StorageStatus
		require.NoError(t, json.Unmarshal(body, &status))
		assert.Equal(t, health.status, status)
	})

	t.Run("storage down", func(t *testing.T) {
		// Given:
		health := stubHealth{status: entity.StorageStatus{Backend: "postgres", Error: "connection refused"}}
		testServer := newTestServer(t, health, stubRoster{})

		// When:
		resp, body := get(t, testServer.URL+"/db-status")

		// Then:
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var status entity.StorageStatus
		require.NoError(t, json.Unmarshal(body, &status))
		assert.False(t, status.Connected)
		assert.Equal(t, "connection refused", status.Error)
	})

	t.Run("read only storage", func(t *testing.T) {
		health := stubHealth{status: entity.StorageStatus{Backend: "redis", Connected: true}}
		testServer := newTestServer(t, health, stubRoster{})

		resp, _ := get(t, testServer.URL+"/db-status")

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestActivePlayers(t *testing.T) {
	t.Run("roster", func(t *testing.T) {
		// Given:
		roster := stubRoster{players: []entity.ActivePlayer{
			{PlayerID: "1", Username: "alice", Wins: 2},
			{PlayerID: "2", Username: "bob", Losses: 2},
		}}
		testServer := newTestServer(t, stubHealth{}, roster)

		// When:
		resp, body := get(t, testServer.URL+"/players/active")

		// Then:
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Players []entity.ActivePlayer `json:"players"`
		}
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, roster.players, got.Players)
	})

	t.Run("empty roster is an empty list", func(t *testing.T) {
		testServer := newTestServer(t, stubHealth{}, stubRoster{})

		_, body := get(t, testServer.URL+"/players/active")

		assert.JSONEq(t, `{"players":[]}`, string(body))
	})

	t.Run("roster failure", func(t *testing.T) {
		testServer := newTestServer(t, stubHealth{}, stubRoster{err: errors.New("redis down")})

		resp, _ := get(t, testServer.URL+"/players/active")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
