package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ssisdev/sisctl/internal/app/models"
)

// DashboardService reads the aggregate views the dashboard screen shows.
type DashboardService struct {
	client APIClient
	logger zerolog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(client APIClient, logger zerolog.Logger) *DashboardService {
	return &DashboardService{client: client, logger: logger}
}

// Summary fetches the combined dashboard payload.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := s.client.Get(ctx, "/dashboard/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Totals fetches just the headline counts.
func (s *DashboardService) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	var totals models.DashboardTotals
	if err := s.client.Get(ctx, "/dashboard/totals", &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// StudentsPerCollege fetches the per-college enrollment breakdown.
func (s *DashboardService) StudentsPerCollege(ctx context.Context) ([]models.CollegeEnrollment, error) {
	var rows []models.CollegeEnrollment
	if err := s.client.Get(ctx, "/dashboard/students-per-college", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopPrograms fetches the programs with the highest enrollment.
func (s *DashboardService) TopPrograms(ctx context.Context) ([]models.ProgramEnrollment, error) {
	var rows []models.ProgramEnrollment
	if err := s.client.Get(ctx, "/dashboard/top-programs", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CollegeStats fetches the full per-college statistics table.
func (s *DashboardService) CollegeStats(ctx context.Context) ([]models.CollegeStats, error) {
	var rows []models.CollegeStats
	if err := s.client.Get(ctx, "/dashboard/college-stats", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
