package handlers

import (
	"errors"
	"net/http"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/response"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/validation"
)

// BrokerHandler handles HTTP requests for the brokerage connection lifecycle:
// token exchange, holdings sync, status and disconnect.
type BrokerHandler struct {
	brokerService *service.BrokerService
}

// NewBrokerHandler creates a new BrokerHandler with the provided service dependency.
func NewBrokerHandler(brokerService *service.BrokerService) *BrokerHandler {
	return &BrokerHandler{
		brokerService: brokerService,
	}
}

// Status handles GET requests for the current brokerage connection state.
// Reports disconnected rather than erroring when no session exists.
//
// Endpoint: GET /api/broker/status
// Response: 200 OK with BrokerStatus
// Error: 500 Internal Server Error if retrieval fails
func (h *BrokerHandler) Status(w http.ResponseWriter, _ *http.Request) {
	status, err := h.brokerService.Status()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to get broker status", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, status)
}

// ExchangeToken handles POST requests to exchange a brokerage request token
// for an access token, establishing a session.
//
// Endpoint: POST /api/broker/session
// Request Body: ExchangeTokenRequest (requestToken)
// Response: 201 Created with BrokerStatus
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 503 Service Unavailable if broker credentials are not configured
// Error: 500 Internal Server Error if the exchange fails
func (h *BrokerHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ExchangeTokenRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateExchangeToken(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	status, err := h.brokerService.ExchangeToken(r.Context(), req.RequestToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrokerNotConfigured) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrBrokerNotConfigured.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExchangeToken.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, status)
}

// SyncHoldings handles POST requests to refresh the local holdings mirror
// from the brokerage.
//
// Endpoint: POST /api/broker/sync
// Response: 200 OK with HoldingsOverview (freshly synced holdings)
// Error: 404 Not Found if no brokerage session exists
// Error: 503 Service Unavailable if broker credentials are not configured
// Error: 500 Internal Server Error if the sync fails
func (h *BrokerHandler) SyncHoldings(w http.ResponseWriter, r *http.Request) {
	overview, err := h.brokerService.SyncHoldings(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBrokerSessionNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBrokerSessionNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrBrokerNotConfigured):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrBrokerNotConfigured.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSyncHoldings.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// Disconnect handles DELETE requests to tear down the brokerage session.
// The holdings mirror is kept so analysis continues on last-known data.
//
// Endpoint: DELETE /api/broker/session
// Response: 204 No Content on successful disconnect
// Error: 404 Not Found if no brokerage session exists
// Error: 500 Internal Server Error if the disconnect fails
func (h *BrokerHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.brokerService.Disconnect(r.Context()); err != nil {
		if errors.Is(err, apperrors.ErrBrokerSessionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBrokerSessionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to disconnect broker session", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
