package services

import (
	"context"

	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// ProgramService defines the interface for program-related operations
type ProgramService interface {
	CreateProgram(ctx context.Context, program *models.Program) error
	GetAllPrograms(ctx context.Context) ([]*models.Program, error)
	UpdateProgram(ctx context.Context, code string, program *models.Program) error
	DeleteProgram(ctx context.Context, code string) error
	SearchPrograms(ctx context.Context, keyword string) ([]*models.Program, error)
	CountPrograms(ctx context.Context) (int64, error)
}

type programServiceImpl struct {
	programRepo repositories.IProgramRepository
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo repositories.IProgramRepository) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
	}
}

func validateProgram(program *models.Program) error {
	if program == nil {
		return apperrors.NewValidationError("program is nil")
	}
	var college string
	if program.CollegeCode != nil {
		college = *program.CollegeCode
	}
	return requireFields([]string{"collegecode", "programcode", "programname"}, college, program.Code, program.Name)
}

func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return s.programRepo.Create(ctx, program)
}

func (s *programServiceImpl) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, code string, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	return s.programRepo.Update(ctx, code, program)
}

// DeleteProgram removes a program and detaches its students
func (s *programServiceImpl) DeleteProgram(ctx context.Context, code string) error {
	return s.programRepo.Delete(ctx, code)
}

func (s *programServiceImpl) SearchPrograms(ctx context.Context, keyword string) ([]*models.Program, error) {
	return s.programRepo.Search(ctx, keyword)
}

func (s *programServiceImpl) CountPrograms(ctx context.Context) (int64, error) {
	return s.programRepo.Count(ctx)
}
