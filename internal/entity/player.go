package entity

type PlayerSlot string

const (
	Player1 PlayerSlot = "player1"
	Player2 PlayerSlot = "player2"
)

// Opponent returns the other seat.
func (that PlayerSlot) Opponent() PlayerSlot {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// PlayerSpec is the configured look of a player: a single glyph and an RGB color.
type PlayerSpec struct {
	Mark  string `json:"mark"`
	Color string `json:"color"`
}

// PlayerState is a player as seen during a game.
type PlayerState struct {
	Slot      PlayerSlot `json:"slot"`
	Mark      string     `json:"mark"`
	Color     string     `json:"color"`
	UndoCount int        `json:"undo_count"`
}
