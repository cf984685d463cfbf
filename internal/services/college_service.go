package services

import (
	"context"

	apperrors "github.com/campuscompass/api-server/internal/errors"
	"github.com/campuscompass/api-server/internal/models"
	"github.com/campuscompass/api-server/internal/repository"
)

// CollegeService exposes read access to the college catalog
type CollegeService interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	CountColleges(ctx context.Context) (int64, error)
}

type collegeService struct {
	repo repository.CollegeRepository
}

// NewCollegeService creates a new college service
func NewCollegeService(repo repository.CollegeRepository) CollegeService {
	return &collegeService{repo: repo}
}

func (s *collegeService) ListColleges(ctx context.Context) ([]models.College, error) {
	colleges, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list colleges", err).WithOperation("ListColleges")
	}
	return colleges, nil
}

func (s *collegeService) CountColleges(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
