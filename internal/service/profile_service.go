package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
)

// ProfileService handles the single-record user profile.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new ProfileService with the provided repository dependencies.
func NewProfileService(
	profileRepo *repository.ProfileRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves the stored profile.
// Returns apperrors.ErrProfileNotFound when no profile has been saved yet.
func (s *ProfileService) GetProfile() (model.Profile, error) {
	return s.profileRepo.GetProfile()
}

// SaveProfile creates or replaces the profile. When a profile already exists
// its ID and creation time are reused, so the table keeps exactly one row.
func (s *ProfileService) SaveProfile(req request.SaveProfileRequest) (*model.Profile, error) {
	now := time.Now()
	profile := model.Profile{
		ID:             uuid.New().String(),
		Age:            req.Age,
		City:           req.City,
		RiskTolerance:  strings.ToLower(strings.TrimSpace(req.RiskTolerance)),
		FinancialGoals: req.FinancialGoals,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if profile.FinancialGoals == nil {
		profile.FinancialGoals = []string{}
	}

	existing, err := s.profileRepo.GetProfile()
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, apperrors.ErrProfileNotFound):
		return nil, err
	}

	if err := s.profileRepo.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &profile, nil
}
