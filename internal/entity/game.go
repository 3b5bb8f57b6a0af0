package entity

import "time"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

type Winner string

const (
	WinnerNone    Winner = ""
	WinnerPlayer1 Winner = "player1"
	WinnerPlayer2 Winner = "player2"
	WinnerDraw    Winner = "draw"
)

func WinnerOf(slot PlayerSlot) Winner {
	if slot == Player2 {
		return WinnerPlayer2
	}
	return WinnerPlayer1
}

// GameState is the read model of a running or finished game.
type GameState struct {
	ID           string        `json:"id"`
	BoardSize    int           `json:"board_size"`
	WinCondition int           `json:"win_condition"`
	Board        Board         `json:"board"`
	MoveOrder    MoveOrder     `json:"move_order"`
	Turn         PlayerSlot    `json:"player_turn"`
	Players      []PlayerState `json:"players"`
	Status       string        `json:"status"`
	Winner       Winner        `json:"winner,omitempty"`
	WinDirection string        `json:"win_direction,omitempty"`
	Plies        int           `json:"plies"`
}

func (that *GameState) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// GameRecord is what gets persisted once a game ends.
type GameRecord struct {
	ID         string    `json:"id"`
	Settings   Settings  `json:"settings"`
	History    []Board   `json:"history"`
	FinalBoard Board     `json:"final_board"`
	Winner     Winner    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

// RecordReview is a stored game annotated with the ply at which each cell was filled.
type RecordReview struct {
	Record    *GameRecord `json:"record"`
	MoveOrder MoveOrder   `json:"move_order"`
}
