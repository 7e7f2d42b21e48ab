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

// ExpenseHandler handles HTTP requests for recurring expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// AllExpenses handles GET requests to retrieve all recurring expenses.
//
// Endpoint: GET /api/expenses
// Response: 200 OK with array of Expense
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) AllExpenses(w http.ResponseWriter, _ *http.Request) {
	expenses, err := h.expenseService.GetAllExpenses()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// GetExpense handles GET requests to retrieve a single expense by ID.
//
// Endpoint: GET /api/expenses/{uuid}
// Response: 200 OK with Expense
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the expense does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	expense, err := h.expenseService.GetExpense(expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// CreateExpense handles POST requests to record a new recurring expense.
//
// Endpoint: POST /api/expenses
// Request Body: CreateExpenseRequest (name, type, amount, frequency, notes)
// Response: 201 Created with Expense
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to update an existing expense.
//
// Endpoint: PUT /api/expenses/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated Expense
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the expense does not exist
// Error: 500 Internal Server Error if update fails
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expenses/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the expense does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	if err := h.expenseService.DeleteExpense(expenseID); err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
