package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordAndUndo(t *testing.T) {
	t.Run("Starts with the initial board only", func(t *testing.T) {
		history := NewHistory(entity.NewBoard(3))

		assert.Equal(t, 1, history.Len())
		assert.Equal(t, 0, history.Plies())
	})

	t.Run("Record stores a deep copy", func(t *testing.T) {
		// Given: a history and a board that is recorded
		history := NewHistory(entity.NewBoard(3))
		board := entity.NewBoard(3)
		board[0][0] = "X"
		history.Record(board)

		// When: the caller keeps changing its board
		board[1][1] = "O"

		// Then: the recorded snapshot is unaffected
		assert.Equal(t, entity.EmptyCell, history.Last()[1][1])
		assert.Equal(t, 2, history.Len())
	})

	t.Run("Undo restores the previous snapshot", func(t *testing.T) {
		// Given: two recorded plies
		history := NewHistory(entity.NewBoard(3))
		first, _ := ApplyMove(entity.NewBoard(3), 0, 0, "X")
		history.Record(first)
		second, _ := ApplyMove(first, 1, 1, "O")
		history.Record(second)

		// When: undoing once
		restored, err := history.Undo()

		// Then: the board after the first ply is returned and the log shrinks by one
		require.NoError(t, err)
		assert.Equal(t, first, restored)
		assert.Equal(t, 2, history.Len())
	})

	t.Run("Undo on the initial board fails with ErrNoHistory", func(t *testing.T) {
		history := NewHistory(entity.NewBoard(3))

		_, err := history.Undo()

		require.ErrorIs(t, err, apperror.ErrNoHistory)
		assert.Equal(t, 1, history.Len())
	})

	t.Run("Snapshots are copies", func(t *testing.T) {
		history := NewHistory(entity.NewBoard(3))

		snapshots := history.Snapshots()
		snapshots[0][0][0] = "X"

		assert.Equal(t, entity.EmptyCell, history.Last()[0][0])
	})
}

func TestMoveOrderOf(t *testing.T) {
	t.Run("First ply at which each cell was filled", func(t *testing.T) {
		// Given: a history of three plies
		history := NewHistory(entity.NewBoard(3))
		board := entity.NewBoard(3)
		for _, move := range []struct {
			row, col int
			mark     string
		}{{1, 1, "X"}, {0, 0, "O"}, {2, 2, "X"}} {
			board, _ = ApplyMove(board, move.row, move.col, move.mark)
			history.Record(board)
		}

		// When: deriving the move order
		order := history.MoveOrder()

		// Then: every filled cell carries its ply, empty ones carry 0
		assert.Equal(t, entity.MoveOrder{
			{2, 0, 0},
			{0, 1, 0},
			{0, 0, 3},
		}, order)
	})

	t.Run("Undone plies disappear from the order", func(t *testing.T) {
		history := NewHistory(entity.NewBoard(3))
		board, _ := ApplyMove(entity.NewBoard(3), 0, 0, "X")
		history.Record(board)
		board, _ = ApplyMove(board, 0, 1, "O")
		history.Record(board)

		_, err := history.Undo()
		require.NoError(t, err)

		assert.Equal(t, entity.MoveOrder{
			{1, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}, history.MoveOrder())
	})

	t.Run("Empty history", func(t *testing.T) {
		assert.Nil(t, MoveOrderOf(nil))
	})
}
