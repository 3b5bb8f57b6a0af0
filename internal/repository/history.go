package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const latestRecordKey = "record:latest"

var ErrRecordNotFound = fmt.Errorf("game record %w", apperror.ErrNotFound)

type HistoryRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetLatest(ctx context.Context) (*entity.GameRecord, error)
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
}

type dbHistory struct {
	client *redis.Client
}

func NewHistoryRepository(client *redis.Client) HistoryRepository {
	return &dbHistory{
		client: client,
	}
}

func historyKey(id string) string    { return "record:" + id + ":history" }
func finalBoardKey(id string) string { return "record:" + id + ":final-board" }
func metaKey(id string) string       { return "record:" + id + ":meta" }

func (that *dbHistory) Save(ctx context.Context, record *entity.GameRecord) error {
	historyJSON, err := json.Marshal(record.History)
	if err != nil {
		return fmt.Errorf("could not marshal history: %w", err)
	}

	finalBoardJSON, err := json.Marshal(record.FinalBoard)
	if err != nil {
		return fmt.Errorf("could not marshal final board: %w", err)
	}

	settingsJSON, err := json.Marshal(record.Settings)
	if err != nil {
		return fmt.Errorf("could not marshal settings: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, historyKey(record.ID), historyJSON, 0)
		pipe.Set(ctx, finalBoardKey(record.ID), finalBoardJSON, 0)
		pipe.HSet(ctx, metaKey(record.ID),
			"winner", string(record.Winner),
			"settings", string(settingsJSON),
			"finished-at", strconv.FormatInt(record.FinishedAt.UnixMilli(), 10),
		)
		pipe.Set(ctx, latestRecordKey, record.ID, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

func (that *dbHistory) GetLatest(ctx context.Context) (*entity.GameRecord, error) {
	id, err := that.client.Get(ctx, latestRecordKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get latest record id: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbHistory) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	historyJSON, err := that.client.Get(ctx, historyKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get history by id: %w", err)
	}

	finalBoardJSON, err := that.client.Get(ctx, finalBoardKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get final board by id: %w", err)
	}

	meta, err := that.client.HGetAll(ctx, metaKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get record meta by id: %w", err)
	}

	return decodeRecord(id, historyJSON, finalBoardJSON, meta["settings"], meta["winner"], meta["finished-at"])
}

func decodeRecord(id, historyJSON, finalBoardJSON, settingsJSON, winner, finishedAt string) (*entity.GameRecord, error) {
	record := &entity.GameRecord{
		ID:     id,
		Winner: entity.Winner(winner),
	}

	if err := json.Unmarshal([]byte(historyJSON), &record.History); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	if err := json.Unmarshal([]byte(finalBoardJSON), &record.FinalBoard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal final board: %w", err)
	}

	if settingsJSON != "" {
		if err := json.Unmarshal([]byte(settingsJSON), &record.Settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}

	if finishedAt != "" {
		millis, err := strconv.ParseInt(finishedAt, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse finished-at: %w", err)
		}
		record.FinishedAt = time.UnixMilli(millis).UTC()
	}

	return record, nil
}
