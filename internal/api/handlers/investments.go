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

// InvestmentHandler handles HTTP requests for external investment endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investmentService.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the provided service dependency.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// AllInvestments handles GET requests to retrieve all declared investments.
//
// Endpoint: GET /api/investments
// Response: 200 OK with array of Investment
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) AllInvestments(w http.ResponseWriter, _ *http.Request) {
	investments, err := h.investmentService.GetAllInvestments()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// GetInvestment handles GET requests to retrieve a single investment by ID.
//
// Endpoint: GET /api/investments/{uuid}
// Response: 200 OK with Investment
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	investment, err := h.investmentService.GetInvestment(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// CreateInvestment handles POST requests to declare a new investment.
// Validates the request body and creates an investment record in the database.
//
// Endpoint: POST /api/investments
// Request Body: CreateInvestmentRequest (name, type, amount, notes)
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// UpdateInvestment handles PUT requests to update an existing investment.
// Validates the request body and updates the specified fields.
//
// Endpoint: PUT /api/investments/{uuid}
// Request Body: UpdateInvestmentRequest (all fields optional)
// Response: 200 OK with updated Investment
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if update fails
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.UpdateInvestment(investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment handles DELETE requests to remove an investment.
//
// Endpoint: DELETE /api/investments/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	if err := h.investmentService.DeleteInvestment(investmentID); err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
