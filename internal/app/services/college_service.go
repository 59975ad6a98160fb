package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/ssisdev/sisctl/internal/app/models"
	"github.com/ssisdev/sisctl/internal/pkg/apperrors"
	"github.com/ssisdev/sisctl/internal/pkg/validation"
)

// CollegeService submits colleges to the backend.
type CollegeService struct {
	client    APIClient
	validator validation.CollegeValidator
	logger    zerolog.Logger
}

// NewCollegeService creates a CollegeService.
func NewCollegeService(client APIClient, logger zerolog.Logger) *CollegeService {
	return &CollegeService{client: client, logger: logger}
}

// List fetches all colleges.
func (s *CollegeService) List(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := s.client.Get(ctx, "/colleges", &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

// Create validates, formats, and submits a new college.
func (s *CollegeService) Create(ctx context.Context, in validation.CollegeInput) (*models.College, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	var created models.College
	if err := s.client.Post(ctx, "/colleges", res.Data, &created); err != nil {
		return nil, err
	}

	s.logger.Info().Str("collegeCode", created.CollegeCode).Msg("college created")
	return &created, nil
}

// Update validates, formats, and submits changes to the college known
// by code.
func (s *CollegeService) Update(ctx context.Context, code string, in validation.CollegeInput) (*models.College, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	path := fmt.Sprintf("/colleges/%s", url.PathEscape(code))
	var updated models.College
	if err := s.client.Put(ctx, path, res.Data, &updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("collegeCode", updated.CollegeCode).Msg("college updated")
	return &updated, nil
}

// Delete removes the college known by code.
func (s *CollegeService) Delete(ctx context.Context, code string) (*models.College, error) {
	path := fmt.Sprintf("/colleges/%s", url.PathEscape(code))
	var deleted models.College
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, err
	}

	s.logger.Info().Str("collegeCode", deleted.CollegeCode).Msg("college deleted")
	return &deleted, nil
}

// Stats fetches aggregate program and student counts per college.
func (s *CollegeService) Stats(ctx context.Context) ([]models.CollegeStats, error) {
	var stats []models.CollegeStats
	if err := s.client.Get(ctx, "/colleges/stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
