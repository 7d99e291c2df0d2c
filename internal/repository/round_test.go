package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
	"github.com/rocketscienceinc/tristrike-backend/internal/tictactoe"
)

func newRound(t *testing.T, id string) *tictactoe.Round {
	t.Helper()

	round, err := tictactoe.NewRound(id, entity.RoundOptions{Mode: entity.ModePvP})
	require.NoError(t, err)

	return round
}

func TestRoundRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID_Success", func(t *testing.T) {
		roundRepo := NewRoundRepository()

		// Given: a stored round
		round := newRound(t, "r1")
		require.NoError(t, roundRepo.Create(ctx, round))

		// When: GetByID is called with its id
		got, err := roundRepo.GetByID(ctx, "r1")

		// Then: the same round is returned
		require.NoError(t, err)
		assert.Same(t, round, got)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		roundRepo := NewRoundRepository()

		got, err := roundRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrRoundNotFound)
		assert.Nil(t, got)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		roundRepo := NewRoundRepository()
		require.NoError(t, roundRepo.Create(ctx, newRound(t, "r2")))

		// When: the round is deleted twice
		require.NoError(t, roundRepo.DeleteByID(ctx, "r2"))
		err := roundRepo.DeleteByID(ctx, "r2")

		// Then: the second delete reports it is gone
		require.ErrorIs(t, err, apperror.ErrRoundNotFound)

		_, err = roundRepo.GetByID(ctx, "r2")
		require.ErrorIs(t, err, apperror.ErrRoundNotFound)
	})

	t.Run("Rounds do not share boards", func(t *testing.T) {
		roundRepo := NewRoundRepository()
		first, second := newRound(t, "a"), newRound(t, "b")
		require.NoError(t, roundRepo.Create(ctx, first))
		require.NoError(t, roundRepo.Create(ctx, second))

		_, err := first.Session.Place(4, entity.First)
		require.NoError(t, err)

		got, err := roundRepo.GetByID(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, got.Session.Board())
	})
}
