package handlers

import (
	"net/http"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/response"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

// HoldingsHandler handles HTTP requests for the locally mirrored brokerage holdings.
type HoldingsHandler struct {
	brokerService *service.BrokerService
}

// NewHoldingsHandler creates a new HoldingsHandler with the provided service dependency.
func NewHoldingsHandler(brokerService *service.BrokerService) *HoldingsHandler {
	return &HoldingsHandler{
		brokerService: brokerService,
	}
}

// GetHoldings handles GET requests to retrieve the mirrored equity and fund holdings.
// Returns the last synced data without contacting the brokerage.
//
// Endpoint: GET /api/holdings
// Response: 200 OK with HoldingsOverview (equities, mutual funds, last sync time)
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingsHandler) GetHoldings(w http.ResponseWriter, _ *http.Request) {
	overview, err := h.brokerService.GetHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}
