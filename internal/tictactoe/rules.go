package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalDownRight
	DiagonalDownLeft
)

func (that Direction) String() string {
	switch that {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDownRight:
		return "diagonal-down-right"
	case DiagonalDownLeft:
		return "diagonal-down-left"
	default:
		return fmt.Sprintf("direction(%d)", int(that))
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
)

// checked in this order; the first winning line is reported.
var directions = [...]struct {
	direction  Direction
	dRow, dCol int
}{
	{Horizontal, 0, 1},
	{Vertical, 1, 0},
	{DiagonalDownRight, 1, 1},
	{DiagonalDownLeft, 1, -1},
}

// ApplyMove returns a copy of board with mark placed at (row, col).
// The input board is never modified.
func ApplyMove(board entity.Board, row, col int, mark string) (entity.Board, error) {
	if mark == entity.EmptyCell {
		return board, fmt.Errorf("%w: empty mark", apperror.ErrInvalidMove)
	}

	if !board.InBounds(row, col) {
		return board, fmt.Errorf("%w: %w: row %d, col %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, row, col)
	}

	if !board.IsEmpty(row, col) {
		return board, fmt.Errorf("%w: %w: row %d, col %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, row, col)
	}

	next := board.Clone()
	next[row][col] = mark

	return next, nil
}

// DetectWin reports whether the mark at (row, col) completes a line of at
// least winCondition cells.
func DetectWin(board entity.Board, row, col, winCondition int) bool {
	_, won := FindWin(board, row, col, winCondition)
	return won
}

// FindWin is DetectWin that also reports the winning direction.
func FindWin(board entity.Board, row, col, winCondition int) (Direction, bool) {
	if !board.InBounds(row, col) || board.IsEmpty(row, col) {
		return 0, false
	}

	mark := board[row][col]
	for _, d := range directions {
		count := 1
		count += countRun(board, row, col, d.dRow, d.dCol, mark)
		count += countRun(board, row, col, -d.dRow, -d.dCol, mark)

		if count >= winCondition {
			return d.direction, true
		}
	}

	return 0, false
}

// DetectDraw reports a full board. Callers must only ask after DetectWin failed.
func DetectDraw(board entity.Board) bool {
	return board.IsFull()
}

// Evaluate classifies the board after a move at (row, col): win first, then draw.
func Evaluate(board entity.Board, row, col, winCondition int) (Outcome, Direction) {
	if direction, won := FindWin(board, row, col, winCondition); won {
		return OutcomeWin, direction
	}

	if DetectDraw(board) {
		return OutcomeDraw, 0
	}

	return OutcomeNone, 0
}

func countRun(board entity.Board, row, col, dRow, dCol int, mark string) int {
	count := 0
	for r, c := row+dRow, col+dCol; board.InBounds(r, c) && board[r][c] == mark; r, c = r+dRow, c+dCol {
		count++
	}
	return count
}
