package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-hotseat/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func newTestManager(t *testing.T) (*GameManager, *mockedUseCase.MocksettingsRepoDep, *mockedUseCase.MockhistoryRepoDep) {
	t.Helper()

	mockSettingsRepo := mockedUseCase.NewMocksettingsRepoDep(t)
	mockHistoryRepo := mockedUseCase.NewMockhistoryRepoDep(t)

	manager := NewGameManager(slog.New(slog.NewTextHandler(io.Discard, nil)), mockSettingsRepo, mockHistoryRepo, Options{
		UndoAllowance:   3,
		FinalizeTimeout: time.Second,
		Coin:            func() bool { return true },
		NewID:           func() string { return "game-1" },
	})
	t.Cleanup(manager.Close)

	return manager, mockSettingsRepo, mockHistoryRepo
}

func defaultSettings() *entity.Settings {
	settings := entity.DefaultSettings()
	return &settings
}

func startedManager(t *testing.T, settings *entity.Settings) (*GameManager, *mockedUseCase.MockhistoryRepoDep) {
	t.Helper()

	manager, mockSettingsRepo, mockHistoryRepo := newTestManager(t)

	mockSettingsRepo.EXPECT().
		Get(mock.Anything).
		Return(settings, nil).
		Once()

	_, err := manager.StartGame(context.Background())
	require.NoError(t, err)

	return manager, mockHistoryRepo
}

func TestGameManager_SaveSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves valid settings", func(t *testing.T) {
		// Given: a manager and valid settings
		manager, mockSettingsRepo, _ := newTestManager(t)
		settings := defaultSettings()

		mockSettingsRepo.EXPECT().
			Save(ctx, settings).
			Return(nil).
			Once()

		// When: saving them
		err := manager.SaveSettings(ctx, settings)

		// Then: they reach the store
		require.NoError(t, err)
	})

	t.Run("Rejects invalid settings without touching the store", func(t *testing.T) {
		// Given: a win condition longer than the board
		manager, _, _ := newTestManager(t)
		settings := defaultSettings()
		settings.WinCondition = 4

		// When: saving them
		err := manager.SaveSettings(ctx, settings)

		// Then: ErrInvalidConfiguration is returned
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Store failure is wrapped", func(t *testing.T) {
		manager, mockSettingsRepo, _ := newTestManager(t)

		mockSettingsRepo.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.Settings")).
			Return(errStorageIsFull).
			Once()

		err := manager.SaveSettings(ctx, defaultSettings())

		require.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestGameManager_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing settings", func(t *testing.T) {
		// Given: the store has nothing saved
		manager, mockSettingsRepo, _ := newTestManager(t)

		mockSettingsRepo.EXPECT().
			Get(ctx).
			Return((*entity.Settings)(nil), repository.ErrSettingsNotFound).
			Once()

		// When: starting a game
		state, err := manager.StartGame(ctx)

		// Then: ErrMissingConfiguration is returned and no game exists
		require.ErrorIs(t, err, apperror.ErrMissingConfiguration)
		assert.Nil(t, state)

		_, err = manager.CurrentGame(ctx)
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Store failure", func(t *testing.T) {
		manager, mockSettingsRepo, _ := newTestManager(t)

		mockSettingsRepo.EXPECT().
			Get(ctx).
			Return((*entity.Settings)(nil), errRedisDown).
			Once()

		state, err := manager.StartGame(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, state)
	})

	t.Run("Starts a fresh game from stored settings", func(t *testing.T) {
		// Given: a 4x4 board where player2 moves first
		manager, mockSettingsRepo, _ := newTestManager(t)
		settings := defaultSettings()
		settings.BoardSize = 4
		settings.FirstPlayer = entity.FirstPlayer2

		mockSettingsRepo.EXPECT().
			Get(ctx).
			Return(settings, nil).
			Once()

		// When: starting a game
		state, err := manager.StartGame(ctx)

		// Then: the board is empty and player2 is on turn
		require.NoError(t, err)
		assert.Equal(t, "game-1", state.ID)
		assert.Equal(t, entity.NewBoard(4), state.Board)
		assert.Equal(t, entity.Player2, state.Turn)
		assert.Equal(t, entity.StatusOngoing, state.Status)
		assert.Equal(t, 3, state.Players[0].UndoCount)
		assert.Equal(t, 3, state.Players[1].UndoCount)

		current, err := manager.CurrentGame(ctx)
		require.NoError(t, err)
		assert.Equal(t, state, current)
	})
}

func TestGameManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("No active game", func(t *testing.T) {
		manager, _, _ := newTestManager(t)

		state, err := manager.MakeMove(ctx, 0, 0)

		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
		assert.Nil(t, state)
	})

	t.Run("Occupied cell returns unchanged state", func(t *testing.T) {
		// Given: a game with X at the center
		manager, _ := startedManager(t, defaultSettings())

		before, err := manager.MakeMove(ctx, 1, 1)
		require.NoError(t, err)

		// When: O plays on the same cell
		after, err := manager.MakeMove(ctx, 1, 1)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, after)
	})

	t.Run("Winning move saves the record once", func(t *testing.T) {
		// Given: X about to complete the top row
		manager, mockHistoryRepo := startedManager(t, defaultSettings())

		saved := make(chan *entity.GameRecord, 1)
		mockHistoryRepo.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.GameRecord")).
			Run(func(_ context.Context, record *entity.GameRecord) { saved <- record }).
			Return(nil).
			Once()

		for _, cell := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			_, err := manager.MakeMove(ctx, cell[0], cell[1])
			require.NoError(t, err)
		}

		// When: X plays the last cell of the row
		state, err := manager.MakeMove(ctx, 0, 2)

		// Then: player1 wins horizontally and the record is persisted
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, state.Status)
		assert.Equal(t, entity.WinnerPlayer1, state.Winner)
		assert.Equal(t, "horizontal", state.WinDirection)

		manager.Close()

		record := <-saved
		assert.Equal(t, "game-1", record.ID)
		assert.Equal(t, entity.WinnerPlayer1, record.Winner)
		assert.Len(t, record.History, 6)
		assert.Equal(t, state.Board, record.FinalBoard)

		// And: further moves are rejected
		_, err = manager.MakeMove(ctx, 2, 2)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Draw saves a draw record", func(t *testing.T) {
		manager, mockHistoryRepo := startedManager(t, defaultSettings())

		mockHistoryRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(record *entity.GameRecord) bool {
				return record.Winner == entity.WinnerDraw && len(record.History) == 10
			})).
			Return(nil).
			Once()

		// X O X / X O O / O X X
		moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}

		var (
			state *entity.GameState
			err   error
		)
		for _, cell := range moves {
			state, err = manager.MakeMove(ctx, cell[0], cell[1])
			require.NoError(t, err)
		}

		manager.Close()

		assert.Equal(t, entity.WinnerDraw, state.Winner)
		assert.Equal(t, entity.StatusFinished, state.Status)
	})

	t.Run("Failed record save does not affect the game", func(t *testing.T) {
		manager, mockHistoryRepo := startedManager(t, defaultSettings())

		mockHistoryRepo.EXPECT().
			Save(mock.Anything, mock.Anything).
			Return(errRedisDown).
			Once()

		for _, cell := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
			_, err := manager.MakeMove(ctx, cell[0], cell[1])
			require.NoError(t, err)
		}

		manager.Close()

		state, err := manager.CurrentGame(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.WinnerPlayer1, state.Winner)
	})
}

func TestGameManager_Undo(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing to undo", func(t *testing.T) {
		manager, _ := startedManager(t, defaultSettings())

		state, err := manager.Undo(ctx)

		require.ErrorIs(t, err, apperror.ErrNoHistory)
		assert.Equal(t, 0, state.Plies)
	})

	t.Run("Undo restores previous board and passes the turn", func(t *testing.T) {
		// Given: X played the center
		manager, _ := startedManager(t, defaultSettings())

		_, err := manager.MakeMove(ctx, 1, 1)
		require.NoError(t, err)

		// When: O undoes it
		state, err := manager.Undo(ctx)

		// Then: the board is empty again and O's allowance shrank
		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(3), state.Board)
		assert.Equal(t, 0, state.Plies)
		assert.Equal(t, entity.Player1, state.Turn)
		assert.Equal(t, 3, state.Players[0].UndoCount)
		assert.Equal(t, 2, state.Players[1].UndoCount)
	})
}

func TestGameManager_Records(t *testing.T) {
	ctx := context.Background()

	record := &entity.GameRecord{
		ID:       "g1",
		Settings: entity.DefaultSettings(),
		History: []entity.Board{
			entity.NewBoard(3),
			{{"X", "", ""}, {"", "", ""}, {"", "", ""}},
			{{"X", "", ""}, {"", "O", ""}, {"", "", ""}},
		},
		FinalBoard: entity.Board{{"X", "", ""}, {"", "O", ""}, {"", "", ""}},
		Winner:     entity.WinnerDraw,
	}

	t.Run("Latest record carries move order", func(t *testing.T) {
		manager, _, mockHistoryRepo := newTestManager(t)

		mockHistoryRepo.EXPECT().
			GetLatest(ctx).
			Return(record, nil).
			Once()

		review, err := manager.LatestRecord(ctx)

		require.NoError(t, err)
		assert.Same(t, record, review.Record)
		assert.Equal(t, entity.MoveOrder{{1, 0, 0}, {0, 2, 0}, {0, 0, 0}}, review.MoveOrder)
	})

	t.Run("Unknown id", func(t *testing.T) {
		manager, _, mockHistoryRepo := newTestManager(t)

		mockHistoryRepo.EXPECT().
			GetByID(ctx, "nope").
			Return((*entity.GameRecord)(nil), repository.ErrRecordNotFound).
			Once()

		review, err := manager.RecordByID(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, review)
	})
}

func TestGameManager_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given: a subscriber attached before the game starts
	manager, mockSettingsRepo, _ := newTestManager(t)
	updates, unsubscribe := manager.Subscribe(ctx)

	mockSettingsRepo.EXPECT().
		Get(mock.Anything).
		Return(defaultSettings(), nil).
		Once()

	// When: the game starts and a move is played
	_, err := manager.StartGame(ctx)
	require.NoError(t, err)

	_, err = manager.MakeMove(ctx, 0, 0)
	require.NoError(t, err)

	// Then: both states are delivered in order
	first := <-updates
	assert.Equal(t, 0, first.Plies)

	second := <-updates
	assert.Equal(t, 1, second.Plies)
	assert.Equal(t, "X", second.Board[0][0])

	// And: unsubscribing closes the channel
	unsubscribe()

	_, ok := <-updates
	assert.False(t, ok)
}
