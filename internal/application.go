package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/websocket"
)

type stores struct {
	settings repository.SettingsRepository
	history  repository.HistoryRepository
	closer   io.Closer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = st.closer.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, st.settings, st.history, usecase.Options{
		UndoAllowance:   conf.Game.UndoAllowance,
		FinalizeTimeout: conf.Game.FinalizeTimeout,
	})
	defer gameManager.Close()

	wsServer := websocket.New(logger, gameManager, nil)
	router := rest.NewRouter(logger, gameManager, wsServer)

	log.Info("Starting HTTP server", "addr", conf.HTTP.Addr(), "storage", conf.Storage.Driver)

	if err = rest.Start(ctx, conf.HTTP.Addr(), router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func openStores(ctx context.Context, conf *config.Config) (*stores, error) {
	switch conf.Storage.Driver {
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return &stores{
			settings: repository.NewSQLiteSettingsRepository(sqliteStorage.Connection),
			history:  repository.NewSQLiteHistoryRepository(sqliteStorage.Connection),
			closer:   sqliteStorage,
		}, nil
	default:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &stores{
			settings: repository.NewSettingsRepository(redisStorage.Connection),
			history:  repository.NewHistoryRepository(redisStorage.Connection),
			closer:   redisStorage,
		}, nil
	}
}
