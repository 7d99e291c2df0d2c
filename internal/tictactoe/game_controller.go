package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
)

// Move is one accepted placement.
type Move struct {
	Cell int         `json:"cell"`
	Mark entity.Mark `json:"mark"`
}

// Session is a single round on one board. It is not safe for concurrent use;
// callers serialise access. A finished session is replaced, never reset.
type Session struct {
	board    entity.Board
	turn     entity.Mark
	starting entity.Mark
	moves    []Move
}

// NewSession starts an empty board with startingMark to move.
func NewSession(startingMark entity.Mark) (*Session, error) {
	if !startingMark.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, startingMark)
	}

	return &Session{
		turn:     startingMark,
		starting: startingMark,
		moves:    make([]Move, 0, entity.BoardSize),
	}, nil
}

// Place puts mark on cell. It returns the session outcome whether or not the
// move was accepted; a non-nil error means nothing changed.
func (that *Session) Place(cell int, mark entity.Mark) (entity.Outcome, error) {
	if err := that.validateMove(cell, mark); err != nil {
		return that.Outcome(), fmt.Errorf("invalid turn: %w", err)
	}

	that.board[cell] = mark
	that.moves = append(that.moves, Move{Cell: cell, Mark: mark})

	return that.passTurn(mark), nil
}

// validateMove - checks if the move is valid.
func (that *Session) validateMove(cell int, mark entity.Mark) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Outcome().IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.board[cell].Valid() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	if mark != that.turn {
		return fmt.Errorf("%w: %q to move", apperror.ErrNotYourTurn, that.turn)
	}

	return nil
}

// passTurn - re-derives the outcome after a move and hands the turn over while the game goes on.
func (that *Session) passTurn(mark entity.Mark) entity.Outcome {
	outcome := that.Outcome()
	if !outcome.IsFinished() {
		that.turn = mark.Opponent()
	}

	return outcome
}

// Board returns a copy of the board.
func (that *Session) Board() entity.Board {
	return that.board
}

// Turn is the mark to move next. Once the game is decided it stays on the last mover.
func (that *Session) Turn() entity.Mark {
	return that.turn
}

func (that *Session) StartingMark() entity.Mark {
	return that.starting
}

// Outcome is computed from the board on every call.
func (that *Session) Outcome() entity.Outcome {
	return entity.Evaluate(that.board)
}

// Moves returns the accepted placements in order.
func (that *Session) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}
