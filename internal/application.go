package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/moderation"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/postgres"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
	"github.com/rocketscienceinc/gomoku-backend/transport/websocket"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrDSNNotFound        = errors.New("postgres dsn is empty")
	ErrUnknownRecordStore = errors.New("unknown record storage")
)

// records - where players, games and moves are kept.
type records struct {
	players repository.PlayerRepository
	games   repository.GameRepository
	health  repository.HealthRepository

	close func()
}

// sharedRand - the package level math/rand source is safe for concurrent use.
type sharedRand struct{}

func (sharedRand) Intn(n int) int {
	return rand.Intn(n)
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	store, err := openRecords(ctx, log, conf, redisStorage)
	if err != nil {
		return err
	}
	defer store.close()

	clock := usecase.NewSystemClock()
	filter := moderation.NewWordFilter(conf.Moderation.BlockedWords...)
	sessionRepo := repository.NewSessionRepository(redisStorage)

	directory := usecase.NewDirectory(logger, filter, store.players, sessionRepo, clock, conf.Presence.HeartbeatWindow)
	hub := websocket.NewHub(logger, directory)
	coordinator := usecase.NewCoordinator(logger, directory, store.players, store.games, sharedRand{}, clock, conf.Storage.Timeout)
	presence := usecase.NewPresence(logger, clock, conf.Game.GracePeriod, directory, coordinator, hub)
	broker := usecase.NewBroker(logger, clock, directory, coordinator, conf.Challenge.TTL, usecase.BoardSizes{
		Default: conf.Game.DefaultBoardSize,
		Min:     conf.Game.MinBoardSize,
		Max:     conf.Game.MaxBoardSize,
	})
	lobby := usecase.NewLobby(logger, directory, broker, coordinator, presence)
	defer lobby.Stop()

	go runSweeper(ctx, conf.Presence.CleanupInterval, lobby)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, rest.NewHandlers(logger, store.health, lobby))
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, lobby, hub, websocket.Options{
			ReadTimeout:    conf.Socket.ReadTimeout,
			WriteTimeout:   conf.Socket.WriteTimeout,
			OutboxSize:     conf.Socket.OutboxSize,
			OriginPatterns: conf.Socket.OriginPatterns,
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func openRecords(ctx context.Context, log *slog.Logger, conf *config.Config, redisStorage *redis.Client) (*records, error) {
	switch conf.Storage.Records {
	case config.RecordsRedis:
		return &records{
			players: repository.NewPlayerRepository(redisStorage),
			games:   repository.NewGameRepository(redisStorage),
			health:  repository.NewHealthRepository(redisStorage),
			close:   func() {},
		}, nil
	case config.RecordsPostgres:
		if conf.Postgres.DSN == "" {
			return nil, ErrDSNNotFound
		}

		db, err := storage.NewPostgres(ctx, conf.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = postgres.Migrate(ctx, db); err != nil {
			closePostgres(log, db)
			return nil, fmt.Errorf("could not migrate postgres storage: %w", err)
		}

		return &records{
			players: postgres.NewPlayerRepository(db),
			games:   postgres.NewGameRepository(db),
			health:  postgres.NewHealthRepository(db),
			close:   func() { closePostgres(log, db) },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordStore, conf.Storage.Records)
	}
}

func closePostgres(log *slog.Logger, db *gorm.DB) {
	if err := storage.ClosePostgres(db); err != nil {
		log.Error("could not close postgres storage", "error", err)
	}
}

type sweeper interface {
	Sweep(ctx context.Context)
}

// runSweeper - expires challenges and stale sessions until ctx is done.
func runSweeper(ctx context.Context, interval time.Duration, target sweeper) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			target.Sweep(ctx)
		}
	}
}
