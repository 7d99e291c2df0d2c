package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
)

const (
	scoresKey     = "scores"
	lastResultKey = "scores:last"
)

type ScoreRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Record counts a finished round and remembers it as the last result.
func (that *dbScore) Record(ctx context.Context, outcome entity.Outcome) error {
	field, err := entity.ScoreField(outcome)
	if err != nil {
		return fmt.Errorf("could not record score: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, scoresKey, field, 1)
		pipe.Set(ctx, lastResultKey, outcome.String(), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Scoreboard, error) {
	fields, err := that.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	board := &entity.Scoreboard{}
	for field, dst := range map[string]*int64{"X": &board.X, "O": &board.O, "D": &board.Draw} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *dst, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s score: %w", field, err)
		}
	}

	last, err := that.client.Get(ctx, lastResultKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get last result: %w", err)
	}

	board.Last = last

	return board, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoresKey, lastResultKey).Err(); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	return nil
}
