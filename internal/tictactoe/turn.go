package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// ChooseFirst resolves the configured first player. coin is flipped only for
// FirstPlayerRandom; true picks player1.
func ChooseFirst(first entity.FirstPlayer, coin func() bool) entity.PlayerSlot {
	switch first {
	case entity.FirstPlayer2:
		return entity.Player2
	case entity.FirstPlayerRandom:
		if coin == nil {
			coin = flipCoin
		}
		if coin() {
			return entity.Player1
		}
		return entity.Player2
	default:
		return entity.Player1
	}
}

func flipCoin() bool {
	return rand.Intn(2) == 0 //nolint: gosec // it's ok
}

// TurnController tracks whose turn it is, the undo allowances and the result.
type TurnController struct {
	current entity.PlayerSlot
	winner  entity.Winner
	undos   map[entity.PlayerSlot]int
}

func NewTurnController(first entity.PlayerSlot, undoAllowance int) *TurnController {
	if undoAllowance < 0 {
		undoAllowance = 0
	}

	return &TurnController{
		current: first,
		undos: map[entity.PlayerSlot]int{
			entity.Player1: undoAllowance,
			entity.Player2: undoAllowance,
		},
	}
}

func (that *TurnController) Current() entity.PlayerSlot {
	return that.current
}

func (that *TurnController) Winner() entity.Winner {
	return that.winner
}

func (that *TurnController) IsOver() bool {
	return that.winner != entity.WinnerNone
}

// Advance hands the turn to the other player. It is a no-op once the game is over.
func (that *TurnController) Advance() {
	if that.IsOver() {
		return
	}
	that.current = that.current.Opponent()
}

// Finish moves the controller to its terminal state. The current player is kept.
func (that *TurnController) Finish(winner entity.Winner) {
	that.winner = winner
}

func (that *TurnController) UndosLeft(slot entity.PlayerSlot) int {
	return that.undos[slot]
}

// SpendUndo takes one undo from slot's allowance; at zero nothing is taken.
func (that *TurnController) SpendUndo(slot entity.PlayerSlot) bool {
	if that.undos[slot] <= 0 {
		return false
	}
	that.undos[slot]--
	return true
}
