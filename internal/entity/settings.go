package entity

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type FirstPlayer string

const (
	FirstPlayer1      FirstPlayer = "player1"
	FirstPlayer2      FirstPlayer = "player2"
	FirstPlayerRandom FirstPlayer = "random"
)

const (
	MinBoardSize    = 3
	MaxBoardSize    = 25
	MinWinCondition = 3
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Settings is the configuration a game is started from. It is read-only once saved.
type Settings struct {
	BoardSize    int         `json:"board_size"`
	WinCondition int         `json:"win_condition"`
	Player1      PlayerSpec  `json:"player1"`
	Player2      PlayerSpec  `json:"player2"`
	FirstPlayer  FirstPlayer `json:"first_player"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:    3,
		WinCondition: 3,
		Player1:      PlayerSpec{Mark: "X", Color: "#0000FF"},
		Player2:      PlayerSpec{Mark: "O", Color: "#FF0000"},
		FirstPlayer:  FirstPlayerRandom,
	}
}

func (that *Settings) Player(slot PlayerSlot) PlayerSpec {
	if slot == Player2 {
		return that.Player2
	}
	return that.Player1
}

// Validate rejects settings a game cannot be played with, including a win
// length longer than the board.
func (that *Settings) Validate() error {
	if that.BoardSize < MinBoardSize || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d is outside [%d, %d]",
			apperror.ErrInvalidConfiguration, that.BoardSize, MinBoardSize, MaxBoardSize)
	}

	if that.WinCondition < MinWinCondition || that.WinCondition > that.BoardSize {
		return fmt.Errorf("%w: win condition %d is outside [%d, %d]",
			apperror.ErrInvalidConfiguration, that.WinCondition, MinWinCondition, that.BoardSize)
	}

	for _, slot := range []PlayerSlot{Player1, Player2} {
		if err := validatePlayer(slot, that.Player(slot)); err != nil {
			return err
		}
	}

	if that.Player1.Mark == that.Player2.Mark {
		return fmt.Errorf("%w: players share mark %q", apperror.ErrInvalidConfiguration, that.Player1.Mark)
	}

	switch that.FirstPlayer {
	case FirstPlayer1, FirstPlayer2, FirstPlayerRandom:
	default:
		return fmt.Errorf("%w: unknown first player %q", apperror.ErrInvalidConfiguration, that.FirstPlayer)
	}

	return nil
}

func validatePlayer(slot PlayerSlot, spec PlayerSpec) error {
	if utf8.RuneCountInString(spec.Mark) != 1 {
		return fmt.Errorf("%w: %s mark must be a single character, got %q",
			apperror.ErrInvalidConfiguration, slot, spec.Mark)
	}

	if r, _ := utf8.DecodeRuneInString(spec.Mark); unicode.IsSpace(r) {
		return fmt.Errorf("%w: %s mark is blank", apperror.ErrInvalidConfiguration, slot)
	}

	if !colorPattern.MatchString(spec.Color) {
		return fmt.Errorf("%w: %s color %q is not #RRGGBB",
			apperror.ErrInvalidConfiguration, slot, spec.Color)
	}

	return nil
}
