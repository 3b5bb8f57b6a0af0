package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const maxBodyBytes = 1 << 16

type Handlers interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	SaveSettings(w http.ResponseWriter, r *http.Request)
	DefaultSettings(w http.ResponseWriter, r *http.Request)

	StartGame(w http.ResponseWriter, r *http.Request)
	CurrentGame(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	Undo(w http.ResponseWriter, r *http.Request)

	LatestRecord(w http.ResponseWriter, r *http.Request)
	RecordByID(w http.ResponseWriter, r *http.Request)
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string            `json:"error"`
	Game  *entity.GameState `json:"game,omitempty"`
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase usecase.GameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase usecase.GameUseCase) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

func (that *handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := that.gameUseCase.GetSettings(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, settings)
}

func (that *handlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings entity.Settings
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&settings); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed settings"})
		return
	}

	if err := that.gameUseCase.SaveSettings(r.Context(), &settings); err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, settings)
}

func (that *handlers) DefaultSettings(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, entity.DefaultSettings())
}

func (that *handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.gameUseCase.StartGame(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, state)
}

func (that *handlers) CurrentGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.gameUseCase.CurrentGame(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col are required"})
		return
	}

	state, err := that.gameUseCase.MakeMove(r.Context(), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err, state)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *handlers) Undo(w http.ResponseWriter, r *http.Request) {
	state, err := that.gameUseCase.Undo(r.Context())
	if err != nil {
		that.writeError(w, err, state)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *handlers) LatestRecord(w http.ResponseWriter, r *http.Request) {
	review, err := that.gameUseCase.LatestRecord(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, review)
}

func (that *handlers) RecordByID(w http.ResponseWriter, r *http.Request) {
	review, err := that.gameUseCase.RecordByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, review)
}

func (that *handlers) writeError(w http.ResponseWriter, err error, state *entity.GameState) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error(), Game: state})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrMissingConfiguration),
		errors.Is(err, apperror.ErrNoActiveGame),
		errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNoHistory):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
