package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	actionError       = "error"
	unregisterTimeout = 5 * time.Second
)

type lobby interface {
	Register(ctx context.Context, connID, username string) ([]entity.Notification, error)
	Unregister(ctx context.Context, connID string) []entity.Notification

	Challenge(ctx context.Context, connID, targetName string, boardSize int) ([]entity.Notification, error)
	AcceptChallenge(ctx context.Context, connID, challengeID string) ([]entity.Notification, error)
	DeclineChallenge(ctx context.Context, connID, challengeID string) ([]entity.Notification, error)

	Move(ctx context.Context, connID, gameID string, row, col int) ([]entity.Notification, error)
	Surrender(ctx context.Context, connID, gameID string) ([]entity.Notification, error)

	SendRematch(ctx context.Context, connID, opponentID string, boardSize int) ([]entity.Notification, error)
	AcceptRematch(ctx context.Context, connID, rematchID string) ([]entity.Notification, error)
	DeclineRematch(ctx context.Context, connID, rematchID string) ([]entity.Notification, error)

	Heartbeat(ctx context.Context, connID string) ([]entity.Notification, error)
	ActivePlayers(ctx context.Context, connID string) ([]entity.Notification, error)
}

type Options struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	OutboxSize     int
	OriginPatterns []string
}

type handlerFunc func(ctx context.Context, connID string, payload Payload) ([]entity.Notification, error)

type Server struct {
	logger  *slog.Logger
	lobby   lobby
	hub     *Hub
	options Options

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, lobby lobby, hub *Hub, options Options) *Server {
	server := &Server{
		logger:  logger,
		lobby:   lobby,
		hub:     hub,
		options: options,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["register"] = server.handleRegister
	server.handlers["challenge:send"] = server.handleChallengeSend
	server.handlers["challenge:accept"] = server.handleChallengeAccept
	server.handlers["challenge:decline"] = server.handleChallengeDecline
	server.handlers["game:move"] = server.handleGameMove
	server.handlers["game:surrender"] = server.handleGameSurrender
	server.handlers["rematch:send"] = server.handleRematchSend
	server.handlers["rematch:accept"] = server.handleRematchAccept
	server.handlers["rematch:decline"] = server.handleRematchDecline
	server.handlers["heartbeat"] = server.handleHeartbeat
	server.handlers["players:active"] = server.handleActivePlayers

	return server
}

// Router - the websocket endpoint, mounted at /ws.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Get("/ws", that.ServeWS)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS - upgrades the connection and serves it until the client leaves.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{
		OriginPatterns: that.options.OriginPatterns,
	})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	connID := uuid.NewString()
	log = log.With("connID", connID)

	c := newClient(connID, that.options.OutboxSize)
	that.hub.add(c)

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	go that.writeLoop(ctx, conn, c)

	log.Info("WebSocket connection established")

	defer func() {
		that.hub.remove(connID)

		unregisterCtx, unregisterCancel := context.WithTimeout(context.WithoutCancel(ctx), unregisterTimeout)
		defer unregisterCancel()

		that.hub.Send(that.lobby.Unregister(unregisterCtx, connID))

		log.Info("WebSocket connection closed")
	}()

	for {
		readCtx, readCancel := context.WithTimeout(ctx, that.options.ReadTimeout)
		_, data, err := conn.Read(readCtx)
		readCancel()

		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Debug("client closed the connection")
			default:
				log.Info("connection lost", "error", err)
			}

			return
		}

		that.handleMessage(ctx, connID, data)
	}
}

func (that *Server) writeLoop(ctx context.Context, conn *websocket.Conn, c *client) {
	log := that.logger.With("method", "writeLoop", "connID", c.id)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case data := <-c.outbox:
			writeCtx, cancel := context.WithTimeout(ctx, that.options.WriteTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, data)
			cancel()

			if err != nil {
				log.Info("failed to write message", "error", err)
				conn.CloseNow()

				return
			}
		}
	}
}

// handleMessage - one inbound frame. A panic is logged and answered with an error, the connection stays open.
func (that *Server) handleMessage(ctx context.Context, connID string, data []byte) {
	log := that.logger.With("method", "handleMessage", "connID", connID)

	var message Message

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error("panic while handling message", "action", message.Action, "panic", recovered, "stack", string(debug.Stack()))
			that.sendErrorResponse(connID, message.Action, errInternal.Error())
		}
	}()

	if err := json.Unmarshal(data, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		that.sendErrorResponse(connID, actionError, "invalid message")

		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		that.sendErrorResponse(connID, message.Action, "unknown action")

		return
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
			that.sendErrorResponse(connID, message.Action, "invalid payload")

			return
		}
	}

	notifications, err := handler(ctx, connID, payload)

	that.hub.Send(notifications)

	if err != nil {
		publicMessage := errorMessage(err)
		if publicMessage == errInternal.Error() {
			log.Error("error processing message", "action", message.Action, "error", err)
		} else {
			log.Debug("request rejected", "action", message.Action, "error", err)
		}

		that.sendErrorResponse(connID, message.Action, publicMessage)
	}
}

func (that *Server) sendErrorResponse(connID, action, message string) {
	that.hub.Send([]entity.Notification{
		entity.ToConn(connID, action, ErrorPayload{Error: message}),
	})
}
