package repository

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/tictactoe"
)

type RoundRepository interface {
	Create(ctx context.Context, round *tictactoe.Round) error
	GetByID(ctx context.Context, id string) (*tictactoe.Round, error)
	DeleteByID(ctx context.Context, id string) error
}

// memRound keeps live rounds in process memory. A round owns a session with
// its own board, so entries are never shared between ids.
type memRound struct {
	rounds *xsync.MapOf[string, *tictactoe.Round]
}

func NewRoundRepository() RoundRepository {
	return &memRound{
		rounds: xsync.NewMapOf[string, *tictactoe.Round](),
	}
}

func (that *memRound) Create(_ context.Context, round *tictactoe.Round) error {
	that.rounds.Store(round.ID, round)

	return nil
}

func (that *memRound) GetByID(_ context.Context, id string) (*tictactoe.Round, error) {
	round, ok := that.rounds.Load(id)
	if !ok {
		return nil, apperror.ErrRoundNotFound
	}

	return round, nil
}

func (that *memRound) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.rounds.LoadAndDelete(id); !ok {
		return apperror.ErrRoundNotFound
	}

	return nil
}
