package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/ssisdev/sisctl/internal/api"
	"github.com/ssisdev/sisctl/internal/app/models"
	"github.com/ssisdev/sisctl/internal/pkg/apperrors"
	"github.com/ssisdev/sisctl/internal/pkg/validation"
)

// StudentService submits student records to the backend. Raw input is
// validated and formatted locally first; nothing leaves the process on
// a validation failure.
type StudentService struct {
	client    APIClient
	validator validation.StudentValidator
	logger    zerolog.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(client APIClient, logger zerolog.Logger) *StudentService {
	return &StudentService{client: client, logger: logger}
}

// List fetches all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := s.client.Get(ctx, "/students", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Create validates, formats, and submits a new student. The backend
// receives multipart form data so the optional picture rides along.
func (s *StudentService) Create(ctx context.Context, in validation.StudentInput) (*models.Student, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	var created models.Student
	if err := s.client.PostForm(ctx, "/students", studentFields(res.Data), pictureFile(in.Picture), &created); err != nil {
		return nil, err
	}

	s.logger.Info().Str("idNumber", created.IDNumber).Msg("student created")
	return &created, nil
}

// Update validates, formats, and submits changes to the student known
// by idNumber.
func (s *StudentService) Update(ctx context.Context, idNumber string, in validation.StudentInput) (*models.Student, error) {
	res := s.validator.ValidateAndFormat(in)
	if !res.IsValid {
		return nil, apperrors.NewValidationError(res.Error)
	}

	path := fmt.Sprintf("/students/%s", url.PathEscape(idNumber))
	var updated models.Student
	if err := s.client.PutForm(ctx, path, studentFields(res.Data), pictureFile(in.Picture), &updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("idNumber", updated.IDNumber).Msg("student updated")
	return &updated, nil
}

// Delete removes the student known by idNumber and returns the deleted
// record as the backend echoes it back.
func (s *StudentService) Delete(ctx context.Context, idNumber string) (*models.Student, error) {
	path := fmt.Sprintf("/students/%s", url.PathEscape(idNumber))
	var deleted models.Student
	if err := s.client.Delete(ctx, path, &deleted); err != nil {
		return nil, err
	}

	s.logger.Info().Str("idNumber", deleted.IDNumber).Msg("student deleted")
	return &deleted, nil
}

// PerProgram fetches enrollment counts per program.
func (s *StudentService) PerProgram(ctx context.Context) ([]models.ProgramEnrollment, error) {
	var counts []models.ProgramEnrollment
	if err := s.client.Get(ctx, "/students/programs", &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// studentFields flattens a formatted student into form fields.
func studentFields(st *models.Student) map[string]string {
	return map[string]string{
		"id_number":    st.IDNumber,
		"first_name":   st.FirstName,
		"last_name":    st.LastName,
		"year_level":   st.YearLevel,
		"gender":       st.Gender,
		"program_code": st.ProgramCode,
	}
}

// pictureFile adapts an optional validated picture to a form part.
func pictureFile(p *validation.Picture) *api.FormFile {
	if p == nil {
		return nil
	}
	return &api.FormFile{
		Field:   "picture",
		Name:    p.Name,
		MIME:    p.MIME,
		Content: p.Data,
	}
}
