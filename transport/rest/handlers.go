package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tristrike-backend/internal/apperror"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
	"github.com/rocketscienceinc/tristrike-backend/internal/usecase"
)

type gameUseCase interface {
	NewRound(ctx context.Context, opts entity.RoundOptions) (*usecase.RoundState, error)
	MakeTurn(ctx context.Context, roundID string, cell int) (*usecase.RoundState, error)
	GetRound(ctx context.Context, roundID string) (*usecase.RoundState, error)
	Scores(ctx context.Context) (*entity.Scoreboard, error)
	ResetScores(ctx context.Context) error
}

// RoundDefaults fill in whatever a new round request leaves out.
type RoundDefaults struct {
	Mode      entity.Mode
	HumanMark entity.Mark
	CPUStarts bool
}

type newRoundRequest struct {
	Mode      string `json:"mode" validate:"omitempty,oneof=pvp cpu"`
	HumanMark string `json:"human_mark" validate:"omitempty,oneof=X O"`
	CPUStarts *bool  `json:"cpu_starts"`
	Replaces  string `json:"replaces" validate:"omitempty,max=64"`
}

type turnRequest struct {
	Cell *int `json:"cell" validate:"required"`
}

type moveView struct {
	Cell int    `json:"cell"`
	Mark string `json:"mark"`
}

type roundView struct {
	ID        string     `json:"id"`
	Mode      string     `json:"mode"`
	HumanMark string     `json:"human_mark,omitempty"`
	CPUMark   string     `json:"cpu_mark,omitempty"`
	Board     []string   `json:"board"`
	Turn      string     `json:"turn"`
	Status    string     `json:"status"`
	Winner    string     `json:"winner,omitempty"`
	Message   string     `json:"message,omitempty"`
	Moves     []moveView `json:"moves"`
}

type errorView struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	validate *validator.Validate
	game     gameUseCase
	defaults RoundDefaults
}

func newHandlers(logger *slog.Logger, game gameUseCase, defaults RoundDefaults) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		game:     game,
		defaults: defaults,
	}
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) createRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundRequest
	if !that.decode(w, r, &req) {
		return
	}

	opts := entity.RoundOptions{
		Mode:      that.defaults.Mode,
		HumanMark: that.defaults.HumanMark,
		CPUStarts: that.defaults.CPUStarts,
		Replaces:  req.Replaces,
	}
	if req.Mode != "" {
		opts.Mode = entity.Mode(req.Mode)
	}
	if req.HumanMark != "" {
		opts.HumanMark = entity.Mark(req.HumanMark)
	}
	if req.CPUStarts != nil {
		opts.CPUStarts = *req.CPUStarts
	}

	state, err := that.game.NewRound(r.Context(), opts)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newRoundView(state))
}

func (that *handlers) getRound(w http.ResponseWriter, r *http.Request) {
	state, err := that.game.GetRound(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newRoundView(state))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if !that.decode(w, r, &req) {
		return
	}

	state, err := that.game.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newRoundView(state))
}

func (that *handlers) getScores(w http.ResponseWriter, r *http.Request) {
	scores, err := that.game.Scores(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, scores)
}

func (that *handlers) resetScores(w http.ResponseWriter, r *http.Request) {
	if err := that.game.ResetScores(r.Context()); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads and validates a JSON body. It writes a 400 and returns false on
// failure.
func (that *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "malformed request body"})
		return false
	}

	if err := that.validate.Struct(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: err.Error()})
		return false
	}

	return true
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		that.writeJSON(w, status, errorView{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorView{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newRoundView(state *usecase.RoundState) roundView {
	board := make([]string, len(state.Board))
	for i, mark := range state.Board {
		board[i] = string(mark)
	}

	moves := make([]moveView, 0, len(state.Moves))
	for _, move := range state.Moves {
		moves = append(moves, moveView{Cell: move.Cell, Mark: string(move.Mark)})
	}

	return roundView{
		ID:        state.ID,
		Mode:      string(state.Mode),
		HumanMark: string(state.HumanMark),
		CPUMark:   string(state.CPUMark),
		Board:     board,
		Turn:      string(state.Turn),
		Status:    string(state.Outcome.Status),
		Winner:    string(state.Outcome.Winner),
		Message:   state.Announcement,
		Moves:     moves,
	}
}
