package apperror

import "errors"

// Caller contract violations. None of them change game state.
var (
	ErrInvalidCell             = errors.New("invalid cell index")
	ErrCellOccupied            = errors.New("cell is already occupied")
	ErrGameFinished            = errors.New("game is already finished")
	ErrNotYourTurn             = errors.New("it's not your turn")
	ErrInvalidMark             = errors.New("invalid mark")
	ErrInvalidSolverInvocation = errors.New("solver called on a finished or malformed board")
)

var (
	ErrRoundNotFound = errors.New("round not found")
	ErrInvalidMode   = errors.New("invalid game mode")
)
