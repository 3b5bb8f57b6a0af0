package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// History is the per-game log of board snapshots. Entry 0 is the initial
// board, every further entry is the board after one ply.
type History struct {
	snapshots []entity.Board
}

func NewHistory(initial entity.Board) *History {
	return &History{
		snapshots: []entity.Board{initial.Clone()},
	}
}

// Record appends a deep copy of board.
func (that *History) Record(board entity.Board) {
	that.snapshots = append(that.snapshots, board.Clone())
}

func (that *History) Len() int {
	return len(that.snapshots)
}

func (that *History) Plies() int {
	return len(that.snapshots) - 1
}

// Last returns a copy of the most recent snapshot.
func (that *History) Last() entity.Board {
	return that.snapshots[len(that.snapshots)-1].Clone()
}

// Undo drops the most recent snapshot and returns a copy of the one before it.
// The initial board can never be dropped.
func (that *History) Undo() (entity.Board, error) {
	if len(that.snapshots) <= 1 {
		return nil, apperror.ErrNoHistory
	}

	that.snapshots[len(that.snapshots)-1] = nil
	that.snapshots = that.snapshots[:len(that.snapshots)-1]

	return that.Last(), nil
}

// Snapshots returns deep copies of every entry.
func (that *History) Snapshots() []entity.Board {
	snapshots := make([]entity.Board, len(that.snapshots))
	for i, board := range that.snapshots {
		snapshots[i] = board.Clone()
	}
	return snapshots
}

func (that *History) MoveOrder() entity.MoveOrder {
	return MoveOrderOf(that.snapshots)
}

// MoveOrderOf rebuilds, for every cell, the first history index at which it
// became non-empty. Since index 0 is the initial board this is the 1-based ply.
func MoveOrderOf(history []entity.Board) entity.MoveOrder {
	if len(history) == 0 {
		return nil
	}

	size := history[0].Size()
	order := make(entity.MoveOrder, size)
	for row := range order {
		order[row] = make([]int, size)
	}

	for ply, board := range history {
		for row := range board {
			for col, cell := range board[row] {
				if row >= size || col >= size || cell == entity.EmptyCell {
					continue
				}
				if order[row][col] == 0 {
					order[row][col] = ply
				}
			}
		}
	}

	return order
}
