package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

//go:generate mockery --name=settingsRepoDep --inpackage=false --with-expecter --output=../../mocks/usecase --outpkg=usecase
//go:generate mockery --name=historyRepoDep --inpackage=false --with-expecter --output=../../mocks/usecase --outpkg=usecase

// GameUseCase is everything the transports need from the hot-seat session.
type GameUseCase interface {
	SaveSettings(ctx context.Context, settings *entity.Settings) error
	GetSettings(ctx context.Context) (*entity.Settings, error)

	StartGame(ctx context.Context) (*entity.GameState, error)
	CurrentGame(ctx context.Context) (*entity.GameState, error)
	MakeMove(ctx context.Context, row, col int) (*entity.GameState, error)
	Undo(ctx context.Context) (*entity.GameState, error)

	LatestRecord(ctx context.Context) (*entity.RecordReview, error)
	RecordByID(ctx context.Context, id string) (*entity.RecordReview, error)

	Subscribe(ctx context.Context) (<-chan entity.GameState, func())
}

var _ GameUseCase = (*GameManager)(nil)
