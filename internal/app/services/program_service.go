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

// ProgramService submits academic programs to the backend.
type ProgramService struct {
	client    APIClient
	validator validation.ProgramValidator
	logger    zerolog.Logger
}

// NewProgramService creates a ProgramService.
func NewProgramService(client APIClient, logger zerolog.Logger) *ProgramService {
	return &ProgramService{client: client, logger: logger}
}

// List fetches all programs.
func (s *ProgramService) List(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := s.client.Get(ctx, "/programs", &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// Create validates, formats, and submits a new program.
func (s *ProgramService) Create(ctx context.Context, in validation.ProgramInput) (*models.Program, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	var created models.Program
	if err := s.client.Post(ctx, "/programs", res.Data, &created); err != nil {
		return nil, err
	}

	s.logger.Info().Str("programCode", created.ProgramCode).Msg("program created")
	return &created, nil
}

// Update validates, formats, and submits changes to the program known
// by code.
func (s *ProgramService) Update(ctx context.Context, code string, in validation.ProgramInput) (*models.Program, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	path := fmt.Sprintf("/programs/%s", url.PathEscape(code))
	var updated models.Program
	if err := s.client.Put(ctx, path, res.Data, &updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("programCode", updated.ProgramCode).Msg("program updated")
	return &updated, nil
}

// Delete removes the program known by code.
func (s *ProgramService) Delete(ctx context.Context, code string) (*models.Program, error) {
	path := fmt.Sprintf("/programs/%s", url.PathEscape(code))
	var deleted models.Program
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, err
	}

	s.logger.Info().Str("programCode", deleted.ProgramCode).Msg("program deleted")
	return &deleted, nil
}
