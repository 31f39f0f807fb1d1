package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const probeTimeout = 3 * time.Second

type healthChecker interface {
	Check(ctx context.Context) entity.StorageStatus
}

type roster interface {
	ListActive(ctx context.Context) ([]entity.ActivePlayer, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	DBStatusHandler(w http.ResponseWriter, r *http.Request)
	ActivePlayersHandler(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger *slog.Logger

	health healthChecker
	roster roster
}

func NewHandlers(logger *slog.Logger, health healthChecker, roster roster) Handlers {
	return &handlers{
		logger: logger,
		health: health,
		roster: roster,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// DBStatusHandler - 503 unless the storage answers and accepts writes.
func (that *handlers) DBStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status := that.health.Check(ctx)

	code := http.StatusOK
	if !status.Connected || !status.WriteCapable {
		that.logger.Warn("storage is unhealthy", "method", "DBStatusHandler", "backend", status.Backend, "error", status.Error)
		code = http.StatusServiceUnavailable
	}

	that.writeJSON(w, code, status)
}

func (that *handlers) ActivePlayersHandler(w http.ResponseWriter, r *http.Request) {
	players, err := that.roster.ListActive(r.Context())
	if err != nil {
		that.logger.Error("failed to list active players", "method", "ActivePlayersHandler", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if players == nil {
		players = []entity.ActivePlayer{}
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"players": players,
	})
}

func (that *handlers) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
