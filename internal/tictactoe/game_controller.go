package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const DefaultUndoAllowance = 3

type options struct {
	coin          func() bool
	undoAllowance int
	now           func() time.Time
}

type Option func(*options)

// WithCoin replaces the coin used when the first player is random.
func WithCoin(coin func() bool) Option {
	return func(o *options) {
		o.coin = coin
	}
}

func WithUndoAllowance(allowance int) Option {
	return func(o *options) {
		o.undoAllowance = allowance
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Game is a single session: the board, its history and the turn state.
// It is not safe for concurrent use.
type Game struct {
	id       string
	settings entity.Settings

	board   entity.Board
	history *History
	turn    *TurnController

	winDirection string
	finishedAt   time.Time
	recordTaken  bool

	now func() time.Time
}

func NewGame(id string, settings entity.Settings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	o := options{
		coin:          flipCoin,
		undoAllowance: DefaultUndoAllowance,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	board := entity.NewBoard(settings.BoardSize)

	return &Game{
		id:       id,
		settings: settings,
		board:    board,
		history:  NewHistory(board),
		turn:     NewTurnController(ChooseFirst(settings.FirstPlayer, o.coin), o.undoAllowance),
		now:      o.now,
	}, nil
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Settings() entity.Settings {
	return that.settings
}

func (that *Game) Board() entity.Board {
	return that.board.Clone()
}

func (that *Game) Turn() entity.PlayerSlot {
	return that.turn.Current()
}

func (that *Game) IsFinished() bool {
	return that.turn.IsOver()
}

// Move places the current player's mark at (row, col), records the ply and
// either finishes the game or passes the turn. Invalid moves leave the game untouched.
func (that *Game) Move(row, col int) (Outcome, error) {
	if that.turn.IsOver() {
		return OutcomeNone, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	player := that.turn.Current()

	board, err := ApplyMove(that.board, row, col, that.settings.Player(player).Mark)
	if err != nil {
		return OutcomeNone, err
	}

	that.board = board
	that.history.Record(board)

	outcome, direction := Evaluate(board, row, col, that.settings.WinCondition)
	switch outcome {
	case OutcomeWin:
		that.turn.Finish(entity.WinnerOf(player))
		that.winDirection = direction.String()
		that.finishedAt = that.now()
	case OutcomeDraw:
		that.turn.Finish(entity.WinnerDraw)
		that.finishedAt = that.now()
	case OutcomeNone:
		that.turn.Advance()
	}

	return outcome, nil
}

// Undo takes back the last ply. The allowance of the player whose turn it is
// shrinks by one if anything is left; the undo happens either way.
func (that *Game) Undo() error {
	if that.turn.IsOver() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	board, err := that.history.Undo()
	if err != nil {
		return err
	}

	that.board = board
	that.turn.SpendUndo(that.turn.Current())
	that.turn.Advance()

	return nil
}

func (that *Game) State() *entity.GameState {
	status := entity.StatusOngoing
	if that.turn.IsOver() {
		status = entity.StatusFinished
	}

	players := make([]entity.PlayerState, 0, 2)
	for _, slot := range []entity.PlayerSlot{entity.Player1, entity.Player2} {
		spec := that.settings.Player(slot)
		players = append(players, entity.PlayerState{
			Slot:      slot,
			Mark:      spec.Mark,
			Color:     spec.Color,
			UndoCount: that.turn.UndosLeft(slot),
		})
	}

	return &entity.GameState{
		ID:           that.id,
		BoardSize:    that.settings.BoardSize,
		WinCondition: that.settings.WinCondition,
		Board:        that.board.Clone(),
		MoveOrder:    that.history.MoveOrder(),
		Turn:         that.turn.Current(),
		Players:      players,
		Status:       status,
		Winner:       that.turn.Winner(),
		WinDirection: that.winDirection,
		Plies:        that.history.Plies(),
	}
}

// TakeRecord hands out the game record exactly once, and only after the game is over.
func (that *Game) TakeRecord() (*entity.GameRecord, bool) {
	if !that.turn.IsOver() || that.recordTaken {
		return nil, false
	}
	that.recordTaken = true

	return &entity.GameRecord{
		ID:         that.id,
		Settings:   that.settings,
		History:    that.history.Snapshots(),
		FinalBoard: that.board.Clone(),
		Winner:     that.turn.Winner(),
		FinishedAt: that.finishedAt,
	}, true
}
