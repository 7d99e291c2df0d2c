package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
	"github.com/rocketscienceinc/tristrike-backend/internal/solver"
	"github.com/rocketscienceinc/tristrike-backend/internal/tictactoe"
)

const centerCell = 4

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(ctx context.Context, session *tictactoe.Session, mark entity.Mark) (int, error)
}

// BotOptions tune how the computer plays.
type BotOptions struct {
	// Delay is waited before every move so the reply does not feel instant.
	Delay time.Duration
	// SearchOpening runs the full search on an empty board instead of taking the centre.
	SearchOpening bool
}

type botService struct {
	logger *slog.Logger
	opts   BotOptions
}

func NewBotService(logger *slog.Logger, opts BotOptions) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		opts:   opts,
	}
}

// MakeTurn picks the best cell for mark and places it on the session.
func (that *botService) MakeTurn(ctx context.Context, session *tictactoe.Session, mark entity.Mark) (int, error) {
	log := that.logger.With("method", "MakeTurn", "mark", mark)

	if err := that.wait(ctx); err != nil {
		return -1, err
	}

	board := session.Board()
	if len(board.EmptyCells()) == 0 {
		return -1, ErrNoAvailableMoves
	}

	cell, err := that.chooseCell(board, mark)
	if err != nil {
		return -1, fmt.Errorf("failed to choose cell: %w", err)
	}

	if _, err = session.Place(cell, mark); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot placed mark", "cell", cell)

	return cell, nil
}

func (that *botService) chooseCell(board entity.Board, mark entity.Mark) (int, error) {
	// first move center if free
	if !that.opts.SearchOpening && board.IsEmpty() {
		return centerCell, nil
	}

	start := time.Now()
	defer func() {
		solverDuration.Observe(time.Since(start).Seconds())
	}()

	return solver.ChooseMove(board, mark, entity.First)
}

func (that *botService) wait(ctx context.Context) error {
	if that.opts.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.opts.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("bot turn canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
