package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/response"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/validation"
)

// GoalHandler handles HTTP requests for planned future expense endpoints.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// AllGoals handles GET requests to retrieve all planned future expenses.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of Goal
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) AllGoals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.goalService.GetAllGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goals)
}

// GetGoal handles GET requests to retrieve a single planned expense by ID.
//
// Endpoint: GET /api/goals/{uuid}
// Response: 200 OK with Goal
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}

// CreateGoal handles POST requests to record a new planned future expense.
//
// Endpoint: POST /api/goals
// Request Body: CreateGoalRequest (purpose, amount, timeframe, priority, notes)
// Response: 201 Created with Goal
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.CreateGoal(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, goal)
}

// UpdateGoal handles PUT requests to update an existing planned expense.
//
// Endpoint: PUT /api/goals/{uuid}
// Request Body: UpdateGoalRequest (all fields optional)
// Response: 200 OK with updated Goal
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.UpdateGoal(goalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE requests to remove a planned expense.
//
// Endpoint: DELETE /api/goals/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
