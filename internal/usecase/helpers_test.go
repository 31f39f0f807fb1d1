package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/moderation"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock fires timers only from Advance, on the calling goroutine.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testStart}
}

func (that *fakeClock) Now() time.Time {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.now
}

func (that *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	that.mu.Lock()
	defer that.mu.Unlock()

	timer := &fakeTimer{clock: that, at: that.now.Add(d), f: f}
	that.timers = append(that.timers, timer)

	return timer
}

func (that *fakeClock) Advance(d time.Duration) {
	that.mu.Lock()
	that.now = that.now.Add(d)

	var due []*fakeTimer
	for _, timer := range that.timers {
		if !timer.stopped && !timer.fired && !timer.at.After(that.now) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	that.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })

	for _, timer := range due {
		timer.f()
	}
}

func (that *fakeTimer) Stop() bool {
	that.clock.mu.Lock()
	defer that.clock.mu.Unlock()

	wasPending := !that.stopped && !that.fired
	that.stopped = true

	return wasPending
}

// fixedSymbols always returns the same draw.
type fixedSymbols int

func (that fixedSymbols) Intn(int) int {
	return int(that)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []entity.Notification
}

func (that *recordingNotifier) Send(notifications []entity.Notification) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sent = append(that.sent, notifications...)
}

func (that *recordingNotifier) Sent() []entity.Notification {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Notification(nil), that.sent...)
}

// memoryStore keeps players, games and sessions in maps.
type memoryStore struct {
	mu sync.Mutex

	playerSeq int
	names     map[string]string
	stats     map[string]entity.Stats

	gameSeq int
	games   map[string]*entity.GameRecord
	moves   map[string][]entity.Move

	sessions map[string]entity.Session

	createGameErr error
	// beforeCreateGame runs ahead of the write, outside the store lock.
	beforeCreateGame func()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		names:    make(map[string]string),
		stats:    make(map[string]entity.Stats),
		games:    make(map[string]*entity.GameRecord),
		moves:    make(map[string][]entity.Move),
		sessions: make(map[string]entity.Session),
	}
}

func (that *memoryStore) CreateOrGetPlayer(_ context.Context, username string) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	key := strings.ToLower(username)
	if id, ok := that.names[key]; ok {
		return id, nil
	}

	that.playerSeq++
	id := strconv.Itoa(that.playerSeq)
	that.names[key] = id
	that.stats[id] = entity.Stats{}

	return id, nil
}

func (that *memoryStore) GetStats(_ context.Context, id string) (entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats, ok := that.stats[id]
	if !ok {
		return entity.Stats{}, repository.ErrPlayerNotFound
	}

	return stats, nil
}

func (that *memoryStore) CreateGame(_ context.Context, game *entity.Game) (string, error) {
	if that.beforeCreateGame != nil {
		that.beforeCreateGame()
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.createGameErr != nil {
		return "", that.createGameErr
	}

	that.gameSeq++
	record := game.Record()
	record.ID = strconv.Itoa(that.gameSeq)
	that.games[record.ID] = record

	return record.ID, nil
}

func (that *memoryStore) RecordMove(_ context.Context, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[move.GameID] = append(that.moves[move.GameID], move)

	return nil
}

func (that *memoryStore) CompleteGame(ctx context.Context, gameID, winnerID string) error {
	return that.finish(gameID, winnerID, entity.StateCompleted)
}

func (that *memoryStore) AbandonGame(ctx context.Context, gameID, winnerID string) error {
	return that.finish(gameID, winnerID, entity.StateAbandoned)
}

func (that *memoryStore) finish(gameID, winnerID, state string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	record, ok := that.games[gameID]
	if !ok {
		return repository.ErrGameNotFound
	}

	if record.State != entity.StateActive {
		return repository.ErrGameAlreadyEnded
	}

	record.State = state
	record.WinnerID = winnerID

	player1, player2 := that.stats[record.Player1ID], that.stats[record.Player2ID]

	switch winnerID {
	case "":
		player1.Draws++
		player2.Draws++
	case record.Player1ID:
		player1.Wins++
		player2.Losses++
	default:
		player2.Wins++
		player1.Losses++
	}

	that.stats[record.Player1ID], that.stats[record.Player2ID] = player1, player2

	return nil
}

func (that *memoryStore) AddSession(_ context.Context, session entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ConnID] = session

	return nil
}

func (that *memoryStore) RemoveSession(_ context.Context, connID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, connID)

	return nil
}

func (that *memoryStore) UpdateHeartbeat(_ context.Context, connID string, at time.Time) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[connID]
	if !ok {
		return repository.ErrSessionNotFound
	}

	session.LastHeartbeat = at
	that.sessions[connID] = session

	return nil
}

func (that *memoryStore) ActiveSessions(_ context.Context, since time.Time) ([]entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var sessions []entity.Session
	for _, session := range that.sessions {
		if !session.LastHeartbeat.Before(since) {
			sessions = append(sessions, session)
		}
	}

	return sessions, nil
}

func (that *memoryStore) CleanupStaleSessions(_ context.Context, before time.Time) (int64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var removed int64
	for connID, session := range that.sessions {
		if session.LastHeartbeat.Before(before) {
			delete(that.sessions, connID)
			removed++
		}
	}

	return removed, nil
}

func (that *memoryStore) Moves(gameID string) []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Move(nil), that.moves[gameID]...)
}

func (that *memoryStore) Record(gameID string) entity.GameRecord {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.games[gameID]
}

// world wires every component over one memory store.
type world struct {
	clock    *fakeClock
	store    *memoryStore
	notifier *recordingNotifier

	directory   *Directory
	coordinator *Coordinator
	presence    *Presence
	broker      *Broker
	lobby       *Lobby
}

func newWorld(t *testing.T) *world {
	t.Helper()

	logger := discardLogger()
	clock := newFakeClock()
	store := newMemoryStore()
	notifier := &recordingNotifier{}

	directory := NewDirectory(logger, moderation.NewWordFilter(), store, store, clock, 2*time.Minute)
	coordinator := NewCoordinator(logger, directory, store, store, fixedSymbols(0), clock, time.Second)
	presence := NewPresence(logger, clock, 30*time.Second, directory, coordinator, notifier)
	broker := NewBroker(logger, clock, directory, coordinator, 2*time.Minute, BoardSizes{Default: 15, Min: 10, Max: 20})

	t.Cleanup(presence.Stop)

	return &world{
		clock:    clock,
		store:    store,
		notifier: notifier,

		directory:   directory,
		coordinator: coordinator,
		presence:    presence,
		broker:      broker,
		lobby:       NewLobby(logger, directory, broker, coordinator, presence),
	}
}

// register - binds a connection and returns the player id.
func (that *world) register(t *testing.T, connID, username string) string {
	t.Helper()

	view, err := that.directory.Register(context.Background(), connID, username)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}

	return view.ID
}

// startGame - registers two players and starts a game between them directly.
func (that *world) startGame(t *testing.T, boardSize int) (gameID, player1, player2 string) {
	t.Helper()

	player1 = that.register(t, "c1", "alice")
	player2 = that.register(t, "c2", "bob")

	alice, _ := that.directory.ByID(player1)
	bob, _ := that.directory.ByID(player2)

	if _, err := that.coordinator.CreateGame(context.Background(), alice, bob, boardSize); err != nil {
		t.Fatalf("create game: %v", err)
	}

	game, ok := that.coordinator.ActiveGame(player1)
	if !ok {
		t.Fatal("game was not registered")
	}

	return game.ID, player1, player2
}

// find - the first notification with action addressed to playerID.
func find(notifications []entity.Notification, playerID, action string) (entity.Notification, bool) {
	for _, notification := range notifications {
		if notification.PlayerID == playerID && notification.Action == action {
			return notification, true
		}
	}

	return entity.Notification{}, false
}
