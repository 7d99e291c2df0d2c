package tictactoe

import (
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
)

// Round binds a session to the choices it was started with.
type Round struct {
	ID        string
	Mode      entity.Mode
	HumanMark entity.Mark
	StartedAt time.Time

	Session *Session

	// Recorded is set once the outcome has been added to the scoreboard.
	Recorded bool

	mu sync.Mutex
}

// NewRound validates opts and creates a round with a fresh session.
func NewRound(id string, opts entity.RoundOptions) (*Round, error) {
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, opts.Mode)
	}

	if opts.Mode == entity.ModeCPU && !opts.HumanMark.Valid() {
		return nil, fmt.Errorf("%w: human mark %q", apperror.ErrInvalidMark, opts.HumanMark)
	}

	session, err := NewSession(opts.StartingMark())
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	round := &Round{
		ID:        id,
		Mode:      opts.Mode,
		StartedAt: time.Now(),
		Session:   session,
	}
	if opts.Mode == entity.ModeCPU {
		round.HumanMark = opts.HumanMark
	}

	return round, nil
}

// CPUMark is the computer's mark, or Empty in hot-seat rounds.
func (that *Round) CPUMark() entity.Mark {
	if that.Mode != entity.ModeCPU {
		return entity.Empty
	}

	return that.HumanMark.Opponent()
}

// IsCPUTurn reports whether the computer should move next.
func (that *Round) IsCPUTurn() bool {
	return that.Mode == entity.ModeCPU &&
		!that.Session.Outcome().IsFinished() &&
		that.Session.Turn() == that.CPUMark()
}

// Announcement is the text shown when the round is over.
func (that *Round) Announcement() string {
	outcome := that.Session.Outcome()

	switch outcome.Status {
	case entity.StatusDraw:
		return "It's a Draw"
	case entity.StatusWin:
		if that.Mode == entity.ModeCPU && outcome.Winner == that.CPUMark() {
			return "Computer Won"
		}
		return fmt.Sprintf("%s Won", outcome.Winner)
	default:
		return ""
	}
}

func (that *Round) Lock()   { that.mu.Lock() }
func (that *Round) Unlock() { that.mu.Unlock() }
