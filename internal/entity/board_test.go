package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: creating a 4x4 board
	board := NewBoard(4)

	// Then: every cell should be empty
	require.Equal(t, 4, board.Size())
	for _, row := range board {
		require.Len(t, row, 4)
		for _, cell := range row {
			assert.Equal(t, EmptyCell, cell)
		}
	}
	assert.False(t, board.IsFull())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one mark
	board := NewBoard(3)
	board[1][1] = "X"

	// When: cloning it and changing the clone
	clone := board.Clone()
	clone[1][1] = "O"
	clone[0][0] = "X"

	// Then: the original should be untouched
	assert.Equal(t, "X", board[1][1])
	assert.Equal(t, EmptyCell, board[0][0])
	assert.Nil(t, Board(nil).Clone())
}

func TestBoard_InBounds(t *testing.T) {
	board := NewBoard(3)

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(2, 2))
	assert.False(t, board.InBounds(-1, 0))
	assert.False(t, board.InBounds(0, 3))
	assert.False(t, board.InBounds(3, 0))
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a board where every cell is taken
	board := Board{
		{"X", "O", "X"},
		{"X", "O", "O"},
		{"O", "X", "X"},
	}

	// Then: it should be full
	assert.True(t, board.IsFull())

	// When: one cell is freed
	board[2][2] = EmptyCell

	// Then: it should not be full
	assert.False(t, board.IsFull())
}
