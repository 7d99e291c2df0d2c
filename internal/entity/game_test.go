package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e = Empty

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "empty board is in progress",
			board: Board{},
			want:  InProgress,
		},
		{
			name: "top row for First",
			board: Board{
				First, First, First,
				e, e, e,
				e, e, e,
			},
			want: Win(First),
		},
		{
			name: "middle column for Second",
			board: Board{
				First, Second, e,
				e, Second, First,
				e, Second, First,
			},
			want: Win(Second),
		},
		{
			name: "anti-diagonal",
			board: Board{
				First, Second, Second,
				First, Second, e,
				Second, First, First,
			},
			want: Win(Second),
		},
		{
			name: "full board without a line",
			board: Board{
				First, Second, First,
				First, Second, Second,
				Second, First, First,
			},
			want: Draw,
		},
		{
			name: "win on the last cell is a win, not a draw",
			board: Board{
				First, Second, First,
				Second, First, Second,
				Second, First, First,
			},
			want: Win(First),
		},
		{
			name: "ongoing",
			board: Board{
				First, Second, e,
				e, First, e,
				e, e, Second,
			},
			want: InProgress,
		},
		{
			name: "unreachable board with two winners reports the first line",
			board: Board{
				Second, Second, Second,
				First, First, First,
				e, e, e,
			},
			want: Win(Second),
		},
		{
			name: "unknown symbols count as empty",
			board: Board{
				"Z", "Z", "Z",
				First, Second, First,
				Second, First, Second,
			},
			want: InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: evaluating the board
			got := Evaluate(tt.board)

			// Then: the outcome matches
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	// Given: a finished board
	board := Board{First, First, First, Second, Second, e, e, e, e}
	snapshot := board

	// When: evaluating it twice
	first := Evaluate(board)
	second := Evaluate(board)

	// Then: the result is stable and the board untouched
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, board)
}

func TestMark(t *testing.T) {
	t.Run("Opponent swaps the marks", func(t *testing.T) {
		assert.Equal(t, Second, First.Opponent())
		assert.Equal(t, First, Second.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})

	t.Run("ParseMark accepts X and O only", func(t *testing.T) {
		mark, err := ParseMark("O")
		require.NoError(t, err)
		assert.Equal(t, Second, mark)

		_, err = ParseMark("x")
		require.Error(t, err)
	})
}

func TestBoard_Helpers(t *testing.T) {
	// Given: a board with two placements
	board := Board{First, e, e, e, Second, e, e, e, e}

	// Then: helpers see the occupied cells
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, board.EmptyCells())
	assert.Equal(t, 1, board.Count(First))
	assert.Equal(t, 1, board.Count(Second))
	assert.False(t, board.IsEmpty())
	assert.True(t, Board{}.IsEmpty())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "X won", Win(First).String())
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "In progress", InProgress.String())
	assert.True(t, Draw.IsFinished())
	assert.False(t, InProgress.IsFinished())
}
