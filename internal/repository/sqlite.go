package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type sqliteSettings struct {
	conn *sql.DB
}

func NewSQLiteSettingsRepository(conn *sql.DB) SettingsRepository {
	return &sqliteSettings{
		conn: conn,
	}
}

func (that *sqliteSettings) Save(ctx context.Context, settings *entity.Settings) error {
	query := `INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	for key, value := range settingsToFields(settings) {
		if _, err = tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("can't save setting %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit settings: %w", err)
	}

	return nil
}

func (that *sqliteSettings) Get(ctx context.Context) (*entity.Settings, error) {
	query := `SELECT name, value FROM settings`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query settings: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("can't scan setting: %w", err)
		}
		fields[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read settings: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrSettingsNotFound
	}

	return settingsFromFields(fields)
}

type sqliteHistory struct {
	conn *sql.DB
}

func NewSQLiteHistoryRepository(conn *sql.DB) HistoryRepository {
	return &sqliteHistory{
		conn: conn,
	}
}

func (that *sqliteHistory) Save(ctx context.Context, record *entity.GameRecord) error {
	query := `INSERT OR REPLACE INTO game_records (id, history, final_board, winner, settings, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	historyJSON, err := json.Marshal(record.History)
	if err != nil {
		return fmt.Errorf("can't marshal history: %w", err)
	}

	finalBoardJSON, err := json.Marshal(record.FinalBoard)
	if err != nil {
		return fmt.Errorf("can't marshal final board: %w", err)
	}

	settingsJSON, err := json.Marshal(record.Settings)
	if err != nil {
		return fmt.Errorf("can't marshal settings: %w", err)
	}

	_, err = that.conn.ExecContext(ctx, query,
		record.ID, string(historyJSON), string(finalBoardJSON), string(record.Winner),
		string(settingsJSON), record.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save game record: %w", err)
	}

	return nil
}

func (that *sqliteHistory) GetLatest(ctx context.Context) (*entity.GameRecord, error) {
	query := `SELECT id, history, final_board, winner, settings, finished_at
		FROM game_records ORDER BY finished_at DESC, rowid DESC LIMIT 1`

	return that.scanRecord(that.conn.QueryRowContext(ctx, query))
}

func (that *sqliteHistory) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	query := `SELECT id, history, final_board, winner, settings, finished_at
		FROM game_records WHERE id = ?`

	return that.scanRecord(that.conn.QueryRowContext(ctx, query, id))
}

func (that *sqliteHistory) scanRecord(row *sql.Row) (*entity.GameRecord, error) {
	var (
		id, historyJSON, finalBoardJSON, winner, settingsJSON string
		finishedAt                                            int64
	)

	err := row.Scan(&id, &historyJSON, &finalBoardJSON, &winner, &settingsJSON, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find game record: %w", err)
	}

	return decodeRecord(id, historyJSON, finalBoardJSON, settingsJSON, winner, strconv.FormatInt(finishedAt, 10))
}
