package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	ErrNoHistory = errors.New("nothing to undo")

	ErrMissingConfiguration = errors.New("missing configuration")
	ErrInvalidConfiguration = errors.New("invalid configuration")

	ErrNoActiveGame = errors.New("no active game")
	ErrNotFound     = errors.New("not found")
)
