package services

import (
	"context"

	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	CreateCollege(ctx context.Context, college *models.College) error
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	UpdateCollege(ctx context.Context, code string, college *models.College) error
	DeleteCollege(ctx context.Context, code string) error
	SearchColleges(ctx context.Context, keyword string) ([]*models.College, error)
	CountColleges(ctx context.Context) (int64, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo repositories.ICollegeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo repositories.ICollegeRepository) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
	}
}

func validateCollege(college *models.College) error {
	if college == nil {
		return apperrors.NewValidationError("college is nil")
	}
	return requireFields([]string{"collegecode", "collegename"}, college.Code, college.Name)
}

// CreateCollege adds a new college
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}
	return s.collegeRepo.Create(ctx, college)
}

// GetAllColleges lists every college
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	return s.collegeRepo.GetAll(ctx)
}

// UpdateCollege replaces the college stored under code
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, code string, college *models.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}
	return s.collegeRepo.Update(ctx, code, college)
}

// DeleteCollege removes a college and detaches its programs
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, code string) error {
	return s.collegeRepo.Delete(ctx, code)
}

// SearchColleges matches keyword against code and name
func (s *collegeServiceImpl) SearchColleges(ctx context.Context, keyword string) ([]*models.College, error) {
	return s.collegeRepo.Search(ctx, keyword)
}

// CountColleges returns the number of colleges
func (s *collegeServiceImpl) CountColleges(ctx context.Context) (int64, error) {
	return s.collegeRepo.Count(ctx)
}
