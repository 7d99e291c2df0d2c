package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
	"github.com/rocketscienceinc/tristrike-backend/internal/tictactoe"
)

const cpuTurnTimeout = 10 * time.Second

type roundRepo interface {
	Create(ctx context.Context, round *tictactoe.Round) error
	GetByID(ctx context.Context, id string) (*tictactoe.Round, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
	Reset(ctx context.Context) error
}

type botService interface {
	MakeTurn(ctx context.Context, session *tictactoe.Session, mark entity.Mark) (int, error)
}

// RoundState is a consistent copy of a round taken while it was locked.
type RoundState struct {
	ID           string
	Mode         entity.Mode
	HumanMark    entity.Mark
	CPUMark      entity.Mark
	Board        entity.Board
	Turn         entity.Mark
	Outcome      entity.Outcome
	Moves        []tictactoe.Move
	Announcement string
}

type GameManager struct {
	logger *slog.Logger

	roundRepo roundRepo
	scoreRepo scoreRepo
	bot       botService
}

func NewGameManager(logger *slog.Logger, roundRepo roundRepo, scoreRepo scoreRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		roundRepo: roundRepo,
		scoreRepo: scoreRepo,
		bot:       bot,
	}
}

// NewRound starts a round. If the computer opens, its first move is already on
// the board when NewRound returns.
func (that *GameManager) NewRound(ctx context.Context, opts entity.RoundOptions) (*RoundState, error) {
	log := that.logger.With("method", "NewRound", "mode", opts.Mode)

	round, err := tictactoe.NewRound(uuid.NewString(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	// The round is not stored yet, so the opening move needs no lock and a
	// failure leaves nothing behind.
	if round.IsCPUTurn() {
		if err = that.cpuTurn(ctx, round); err != nil {
			return nil, err
		}
	}

	if opts.Replaces != "" {
		if err = that.roundRepo.DeleteByID(ctx, opts.Replaces); err != nil && !errors.Is(err, apperror.ErrRoundNotFound) {
			return nil, fmt.Errorf("failed to discard round %s: %w", opts.Replaces, err)
		}
	}

	if err = that.roundRepo.Create(ctx, round); err != nil {
		return nil, fmt.Errorf("failed to save round: %w", err)
	}

	roundsStarted.WithLabelValues(string(round.Mode)).Inc()

	log.Info("round started", "roundID", round.ID, "starting", round.Session.StartingMark())

	return snapshot(round), nil
}

// MakeTurn applies the human move on cell. In hot-seat rounds the mark is
// whoever is to move; against the computer it must be the human's turn and the
// computer answers before MakeTurn returns.
func (that *GameManager) MakeTurn(ctx context.Context, roundID string, cell int) (*RoundState, error) {
	log := that.logger.With("method", "MakeTurn", "roundID", roundID)

	round, err := that.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	round.Lock()
	defer round.Unlock()

	// A computer reply that timed out earlier is played before the human move.
	if round.IsCPUTurn() {
		log.Warn("resuming computer turn")
		if err = that.cpuTurn(ctx, round); err != nil {
			return snapshot(round), err
		}
	}

	mark := round.Session.Turn()
	if round.Mode == entity.ModeCPU {
		mark = round.HumanMark
	}

	outcome, err := round.Session.Place(cell, mark)
	if err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			that.finishRound(ctx, round)
		}

		return snapshot(round), fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("mark placed", "cell", cell, "mark", mark)

	if outcome.IsFinished() {
		that.finishRound(ctx, round)
		return snapshot(round), nil
	}

	if round.IsCPUTurn() {
		if err = that.cpuTurn(ctx, round); err != nil {
			return snapshot(round), err
		}
	}

	return snapshot(round), nil
}

// GetRound returns the current state of a round.
func (that *GameManager) GetRound(ctx context.Context, roundID string) (*RoundState, error) {
	round, err := that.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	round.Lock()
	defer round.Unlock()

	return snapshot(round), nil
}

func (that *GameManager) Scores(ctx context.Context) (*entity.Scoreboard, error) {
	scores, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	return scores, nil
}

func (that *GameManager) ResetScores(ctx context.Context) error {
	if err := that.scoreRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	that.logger.Info("scores reset")

	return nil
}

// cpuTurn lets the bot answer and records the result if that ended the round.
// The caller holds the round lock.
func (that *GameManager) cpuTurn(ctx context.Context, round *tictactoe.Round) error {
	// The human move is already on the board, so a client going away must not
	// cut the reply short.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cpuTurnTimeout)
	defer cancel()

	cell, err := that.bot.MakeTurn(ctx, round.Session, round.CPUMark())
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("computer placed mark", "roundID", round.ID, "cell", cell)

	if round.Session.Outcome().IsFinished() {
		that.finishRound(ctx, round)
	}

	return nil
}

// finishRound adds a decided round to the scoreboard once. A storage failure is
// logged and retried on the next call for the same round.
func (that *GameManager) finishRound(ctx context.Context, round *tictactoe.Round) {
	log := that.logger.With("method", "finishRound", "roundID", round.ID)

	if round.Recorded {
		return
	}

	outcome := round.Session.Outcome()
	if err := that.scoreRepo.Record(ctx, outcome); err != nil {
		log.Error("failed to record score", "error", err)
		return
	}

	round.Recorded = true
	roundsFinished.WithLabelValues(string(outcome.Status)).Inc()

	log.Info("round finished", "result", outcome.String())
}

func snapshot(round *tictactoe.Round) *RoundState {
	session := round.Session

	return &RoundState{
		ID:           round.ID,
		Mode:         round.Mode,
		HumanMark:    round.HumanMark,
		CPUMark:      round.CPUMark(),
		Board:        session.Board(),
		Turn:         session.Turn(),
		Outcome:      session.Outcome(),
		Moves:        session.Moves(),
		Announcement: round.Announcement(),
	}
}
