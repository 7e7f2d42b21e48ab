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

// ProfileHandler handles HTTP requests for the user profile.
// The profile is a singleton: there is at most one per deployment.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET requests to retrieve the user profile.
//
// Endpoint: GET /api/profile
// Response: 200 OK with Profile
// Error: 404 Not Found if no profile has been saved yet
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, _ *http.Request) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProfileNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

// SaveProfile handles PUT requests to create or replace the user profile.
// The first PUT creates the profile; subsequent PUTs replace it in full.
//
// Endpoint: PUT /api/profile
// Request Body: SaveProfileRequest (age, city, riskTolerance, financialGoals)
// Response: 200 OK with saved Profile
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if saving fails
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveProfile(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	profile, err := h.profileService.SaveProfile(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save profile", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}
