package handlers

import (
	"net/http"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/response"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

// AnalysisHandler handles HTTP requests for running portfolio checkups and
// browsing recent reports.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler with the provided service dependency.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// RunAnalysis handles POST requests to run a full portfolio checkup.
// Assembles a snapshot from all stored records and runs the analysis engine
// over it, returning the generated report.
//
// Endpoint: POST /api/analysis
// Response: 200 OK with AnalysisReport
// Error: 500 Internal Server Error if snapshot assembly or analysis fails
func (h *AnalysisHandler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	report, err := h.analysisService.RunAnalysis(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRunAnalysis.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// History handles GET requests for recently generated reports, newest first.
//
// Endpoint: GET /api/analysis/history
// Response: 200 OK with array of AnalysisReport
func (h *AnalysisHandler) History(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.analysisService.RecentReports())
}
