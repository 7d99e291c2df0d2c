package entity

import "fmt"

// Mode selects who controls the second mark.
type Mode string

const (
	ModePvP Mode = "pvp"
	ModeCPU Mode = "cpu"
)

func (that Mode) Valid() bool {
	return that == ModePvP || that == ModeCPU
}

// RoundOptions are the opaque inputs a client picks before a round.
type RoundOptions struct {
	Mode      Mode
	HumanMark Mark
	CPUStarts bool
	// Replaces is the id of a round this one supersedes; it is discarded.
	Replaces string
}

// StartingMark returns who opens a round. Hot-seat rounds always open with X.
func (that RoundOptions) StartingMark() Mark {
	if that.Mode != ModeCPU {
		return First
	}

	if that.CPUStarts {
		return that.HumanMark.Opponent()
	}

	return that.HumanMark
}

// Scoreboard is the running tally across rounds.
type Scoreboard struct {
	X    int64  `json:"x"`
	O    int64  `json:"o"`
	Draw int64  `json:"draw"`
	Last string `json:"last"`
}

// ScoreField returns the score bucket an outcome is counted in.
func ScoreField(outcome Outcome) (string, error) {
	switch {
	case outcome.Status == StatusDraw:
		return "D", nil
	case outcome.Status == StatusWin && outcome.Winner.Valid():
		return string(outcome.Winner), nil
	default:
		return "", fmt.Errorf("outcome %q is not final", outcome.Status)
	}
}
