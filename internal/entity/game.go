package entity

import "fmt"

// Mark is the symbol a player places on the board. The zero value is an empty cell.
type Mark string

const (
	Empty  Mark = ""
	First  Mark = "X"
	Second Mark = "O"
)

// Valid reports whether the mark is one of the two player marks.
func (that Mark) Valid() bool {
	return that == First || that == Second
}

// Opponent returns the other player's mark. Invalid marks have no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

// ParseMark converts "X"/"O" into a Mark.
func ParseMark(s string) (Mark, error) {
	mark := Mark(s)
	if !mark.Valid() {
		return Empty, fmt.Errorf("unknown mark %q", s)
	}

	return mark, nil
}

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Board is laid out row-major: cells 0-2 are the top row, 6-8 the bottom row.
type Board [BoardSize]Mark

// WinCombos lists every winning line: rows, columns, then the two diagonals.
// Evaluate reports the first complete line in this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// EmptyCells returns the indexes of free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if !cell.Valid() {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell.Valid() {
			return false
		}
	}

	return true
}

// Status classifies a board.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is derived from a Board and never tracked on its own.
// Winner is set only when Status is StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

var (
	InProgress = Outcome{Status: StatusInProgress}
	Draw       = Outcome{Status: StatusDraw}
)

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s won", that.Winner)
	case StatusDraw:
		return "Draw"
	default:
		return "In progress"
	}
}

// Evaluate scans the board for a finished game. It never mutates the board and
// accepts any input, including positions no legal game can reach; anything that
// is not a player mark counts as an empty cell.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a.Valid() && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if !cell.Valid() {
			return InProgress
		}
	}

	return Draw
}
