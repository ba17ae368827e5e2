package services

import (
	"context"

	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, idNum string, student *models.Student) error
	DeleteStudent(ctx context.Context, idNum string) error
	SearchStudents(ctx context.Context, keyword string) ([]*models.Student, error)
	CountStudents(ctx context.Context) (int64, error)
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent checks the required fields. Sex is free text.
func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}
	var program string
	if student.ProgramCode != nil {
		program = *student.ProgramCode
	}
	if err := requireFields(
		[]string{"idnum", "firstname", "lastname", "sex", "programcode"},
		student.IDNum, student.FirstName, student.LastName, student.Sex, program,
	); err != nil {
		return err
	}
	if student.YearLevel < 1 {
		return apperrors.NewValidationError("yearlevel must be at least 1")
	}
	return nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Create(ctx, student)
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, idNum string, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, idNum, student)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, idNum string) error {
	return s.studentRepo.Delete(ctx, idNum)
}

func (s *studentServiceImpl) SearchStudents(ctx context.Context, keyword string) ([]*models.Student, error) {
	return s.studentRepo.Search(ctx, keyword)
}

func (s *studentServiceImpl) CountStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}
