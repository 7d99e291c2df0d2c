// Package solver picks game-theoretically optimal moves with an exhaustive
// minimax search over the remaining game tree.
package solver

import (
	"fmt"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
)

// Leaf scores, always from the maximizing mark's point of view.
const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

// ChooseMove returns the best cell for sideToMove. The search scores positions
// for maximizing: sideToMove maximizes when it equals maximizing and minimizes
// otherwise. Among equally scored moves the lowest cell index wins, so the
// result is fully deterministic.
func ChooseMove(board entity.Board, sideToMove, maximizing entity.Mark) (int, error) {
	if !sideToMove.Valid() || !maximizing.Valid() {
		return -1, fmt.Errorf("%w: side %q, maximizing %q", apperror.ErrInvalidSolverInvocation, sideToMove, maximizing)
	}

	if outcome := entity.Evaluate(board); outcome.IsFinished() {
		return -1, fmt.Errorf("%w: %s", apperror.ErrInvalidSolverInvocation, outcome)
	}

	cell, _ := minimax(board, sideToMove, maximizing)
	if cell < 0 {
		return -1, fmt.Errorf("%w: no empty cell", apperror.ErrInvalidSolverInvocation)
	}

	return cell, nil
}

// Score returns the minimax value of board with side to move, as seen by maximizing.
func Score(board entity.Board, side, maximizing entity.Mark) int {
	_, score := minimax(board, side, maximizing)

	return score
}

// minimax returns the chosen cell and its score. The cell is -1 at leaves.
// board is passed by value, so each child works on its own copy.
func minimax(board entity.Board, side, maximizing entity.Mark) (int, int) {
	if outcome := entity.Evaluate(board); outcome.IsFinished() {
		return -1, leafScore(outcome, maximizing)
	}

	bestCell, bestScore := -1, 0
	for cell, mark := range board {
		if mark.Valid() {
			continue
		}

		board[cell] = side
		_, score := minimax(board, side.Opponent(), maximizing)
		board[cell] = mark

		if bestCell < 0 || better(score, bestScore, side == maximizing) {
			bestCell, bestScore = cell, score
		}
	}

	// A board with no empty cell is always terminal; score anything else as a draw.
	if bestCell < 0 {
		return -1, DrawScore
	}

	return bestCell, bestScore
}

// better is strict so the first cell reaching the extreme keeps it.
func better(score, best int, maximize bool) bool {
	if maximize {
		return score > best
	}

	return score < best
}

func leafScore(outcome entity.Outcome, maximizing entity.Mark) int {
	switch {
	case outcome.Status != entity.StatusWin:
		return DrawScore
	case outcome.Winner == maximizing:
		return WinScore
	default:
		return LossScore
	}
}
