package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	defaultFinalizeTimeout = 5 * time.Second
	subscriberBuffer       = 8
)

type settingsRepoDep interface {
	Save(ctx context.Context, settings *entity.Settings) error
	Get(ctx context.Context) (*entity.Settings, error)
}

type historyRepoDep interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetLatest(ctx context.Context) (*entity.GameRecord, error)
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
}

type Options struct {
	UndoAllowance   int
	FinalizeTimeout time.Duration
	// Coin decides the first player when settings ask for random. Nil means math/rand.
	Coin func() bool
	// NewID generates game ids. Nil means uuid.NewString.
	NewID func() string
}

type subscriber struct {
	ch        chan entity.GameState
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// GameManager owns the single active game session and talks to the stores.
type GameManager struct {
	logger *slog.Logger

	settingsRepo settingsRepoDep
	historyRepo  historyRepoDep
	opts         Options

	mu   sync.Mutex
	game *tictactoe.Game

	subsMu sync.Mutex
	subs   map[*subscriber]struct{}

	pending sync.WaitGroup
}

func NewGameManager(logger *slog.Logger, settingsRepo settingsRepoDep, historyRepo historyRepoDep, opts Options) *GameManager {
	if opts.UndoAllowance < 0 {
		opts.UndoAllowance = tictactoe.DefaultUndoAllowance
	}
	if opts.FinalizeTimeout <= 0 {
		opts.FinalizeTimeout = defaultFinalizeTimeout
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		settingsRepo: settingsRepo,
		historyRepo:  historyRepo,
		opts:         opts,

		subs: make(map[*subscriber]struct{}),
	}
}

func (that *GameManager) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := that.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (that *GameManager) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := that.settingsRepo.Get(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrMissingConfiguration
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// StartGame begins a new session from the stored settings, replacing any previous one.
func (that *GameManager) StartGame(ctx context.Context) (*entity.GameState, error) {
	log := that.logger.With("method", "StartGame")

	settings, err := that.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	opts := []tictactoe.Option{tictactoe.WithUndoAllowance(that.opts.UndoAllowance)}
	if that.opts.Coin != nil {
		opts = append(opts, tictactoe.WithCoin(that.opts.Coin))
	}

	game, err := tictactoe.NewGame(that.opts.NewID(), *settings, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = game
	state := game.State()
	that.publish(state)

	log.Info("game started", "gameID", state.ID, "boardSize", state.BoardSize,
		"winCondition", state.WinCondition, "firstTurn", state.Turn)

	return state, nil
}

func (that *GameManager) CurrentGame(_ context.Context) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	return that.game.State(), nil
}

// MakeMove plays the current player's mark. On an invalid move the unchanged
// state is returned together with the error.
func (that *GameManager) MakeMove(ctx context.Context, row, col int) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	log := that.logger.With("method", "MakeMove", "gameID", that.game.ID())

	outcome, err := that.game.Move(row, col)
	if err != nil {
		log.Debug("move ignored", "row", row, "col", col, "error", err)
		return that.game.State(), fmt.Errorf("failed make move: %w", err)
	}

	state := that.game.State()
	that.publish(state)

	switch outcome {
	case tictactoe.OutcomeWin:
		log.Info("game won", "winner", state.Winner, "direction", state.WinDirection, "plies", state.Plies)
		that.finalize(ctx)
	case tictactoe.OutcomeDraw:
		log.Info("game drawn", "plies", state.Plies)
		that.finalize(ctx)
	case tictactoe.OutcomeNone:
	}

	return state, nil
}

func (that *GameManager) Undo(_ context.Context) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	log := that.logger.With("method", "Undo", "gameID", that.game.ID())

	if err := that.game.Undo(); err != nil {
		log.Info("undo ignored", "error", err)
		return that.game.State(), fmt.Errorf("failed undo: %w", err)
	}

	state := that.game.State()
	that.publish(state)

	return state, nil
}

func (that *GameManager) LatestRecord(ctx context.Context) (*entity.RecordReview, error) {
	record, err := that.historyRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}

	return review(record), nil
}

func (that *GameManager) RecordByID(ctx context.Context, id string) (*entity.RecordReview, error) {
	record, err := that.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id: %w", err)
	}

	return review(record), nil
}

// Subscribe streams a state snapshot after every change. Subscribers that
// fall behind are dropped; the channel is closed on unsubscribe, ctx end or Close.
func (that *GameManager) Subscribe(ctx context.Context) (<-chan entity.GameState, func()) {
	sub := &subscriber{ch: make(chan entity.GameState, subscriberBuffer)}

	that.subsMu.Lock()
	that.subs[sub] = struct{}{}
	that.subsMu.Unlock()

	unsubscribe := func() {
		that.subsMu.Lock()
		delete(that.subs, sub)
		that.subsMu.Unlock()
		sub.close()
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return sub.ch, unsubscribe
}

// Close waits for pending record writes and disconnects subscribers.
func (that *GameManager) Close() {
	that.pending.Wait()

	that.subsMu.Lock()
	defer that.subsMu.Unlock()

	for sub := range that.subs {
		sub.close()
		delete(that.subs, sub)
	}
}

// finalize hands the finished game to the history store without blocking play.
// Must be called with mu held.
func (that *GameManager) finalize(ctx context.Context) {
	record, ok := that.game.TakeRecord()
	if !ok {
		return
	}

	log := that.logger.With("method", "finalize", "gameID", record.ID)

	that.pending.Add(1)
	go func() {
		defer that.pending.Done()

		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), that.opts.FinalizeTimeout)
		defer cancel()

		if err := that.historyRepo.Save(saveCtx, record); err != nil {
			log.Error("failed to save game record", "error", err)
			return
		}

		log.Info("game record saved", "winner", record.Winner, "plies", len(record.History)-1)
	}()
}

func (that *GameManager) publish(state *entity.GameState) {
	that.subsMu.Lock()
	defer that.subsMu.Unlock()

	for sub := range that.subs {
		select {
		case sub.ch <- *state:
		default:
			that.logger.Warn("dropping slow subscriber")
			sub.close()
			delete(that.subs, sub)
		}
	}
}

func review(record *entity.GameRecord) *entity.RecordReview {
	return &entity.RecordReview{
		Record:    record,
		MoveOrder: tictactoe.MoveOrderOf(record.History),
	}
}
