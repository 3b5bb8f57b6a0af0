package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const settingsKey = "settings:active"

// flat key/value layout shared by every settings backend.
const (
	fieldBoardSize    = "board-size"
	fieldWinCondition = "win-condition"
	fieldPlayer1Mark  = "player1-mark"
	fieldPlayer1Color = "player1-color"
	fieldPlayer2Mark  = "player2-mark"
	fieldPlayer2Color = "player2-color"
	fieldFirstPlayer  = "first-player"
)

var ErrSettingsNotFound = fmt.Errorf("settings %w", apperror.ErrNotFound)

type SettingsRepository interface {
	Save(ctx context.Context, settings *entity.Settings) error
	Get(ctx context.Context) (*entity.Settings, error)
}

type dbSettings struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) SettingsRepository {
	return &dbSettings{
		client: client,
	}
}

func (that *dbSettings) Save(ctx context.Context, settings *entity.Settings) error {
	fields := settingsToFields(settings)

	values := make([]any, 0, len(fields)*2)
	for key, value := range fields {
		values = append(values, key, value)
	}

	if err := that.client.HSet(ctx, settingsKey, values...).Err(); err != nil {
		return fmt.Errorf("failed to set settings: %w", err)
	}

	return nil
}

func (that *dbSettings) Get(ctx context.Context) (*entity.Settings, error) {
	fields, err := that.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrSettingsNotFound
	}

	return settingsFromFields(fields)
}

func settingsToFields(settings *entity.Settings) map[string]string {
	return map[string]string{
		fieldBoardSize:    strconv.Itoa(settings.BoardSize),
		fieldWinCondition: strconv.Itoa(settings.WinCondition),
		fieldPlayer1Mark:  settings.Player1.Mark,
		fieldPlayer1Color: settings.Player1.Color,
		fieldPlayer2Mark:  settings.Player2.Mark,
		fieldPlayer2Color: settings.Player2.Color,
		fieldFirstPlayer:  string(settings.FirstPlayer),
	}
}

func settingsFromFields(fields map[string]string) (*entity.Settings, error) {
	boardSize, err := strconv.Atoi(fields[fieldBoardSize])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldBoardSize, err)
	}

	winCondition, err := strconv.Atoi(fields[fieldWinCondition])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldWinCondition, err)
	}

	return &entity.Settings{
		BoardSize:    boardSize,
		WinCondition: winCondition,
		Player1: entity.PlayerSpec{
			Mark:  fields[fieldPlayer1Mark],
			Color: fields[fieldPlayer1Color],
		},
		Player2: entity.PlayerSpec{
			Mark:  fields[fieldPlayer2Mark],
			Color: fields[fieldPlayer2Color],
		},
		FirstPlayer: entity.FirstPlayer(fields[fieldFirstPlayer]),
	}, nil
}
