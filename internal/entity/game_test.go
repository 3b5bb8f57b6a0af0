package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStateStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game state with StatusFinished
		state := &GameState{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := state.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
		assert.False(t, state.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game state with StatusOngoing
		state := &GameState{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := state.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
		assert.False(t, state.IsFinished())
	})
}

func TestWinnerOf(t *testing.T) {
	assert.Equal(t, WinnerPlayer1, WinnerOf(Player1))
	assert.Equal(t, WinnerPlayer2, WinnerOf(Player2))
}

func TestPlayerSlot_Opponent(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
}
