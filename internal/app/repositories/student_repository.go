package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/db"
	"github.com/webssis/ssis/internal/pkg/apperrors"
	"github.com/webssis/ssis/internal/pkg/dberrors"
)

var (
	studentColumns = []string{"idnum", "firstname", "lastname", "sex", "yearlevel", "programcode"}
	// yearlevel is numeric and is left out of keyword search
	studentTextColumns = []string{"idnum", "firstname", "lastname", "sex", "programcode"}
)

// IStudentRepository defines the student data operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, idNum string, student *models.Student) error
	Delete(ctx context.Context, idNum string) error
	Search(ctx context.Context, keyword string) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.Gateway
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(gw *db.Gateway) *StudentRepository {
	return &StudentRepository{
		db: gw,
		sb: statementBuilder(),
	}
}

func (r *StudentRepository) translate(err error, student *models.Student) error {
	switch {
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.NewConflictError("Student ID already exists")
	case dberrors.IsForeignKeyError(err):
		return apperrors.NewInvalidReferenceError(fmt.Sprintf("Program '%s' does not exist", deref(student.ProgramCode)))
	}
	return nil
}

// Create inserts a student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	stmt := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.IDNum, student.FirstName, student.LastName, student.Sex, int32(student.YearLevel), student.ProgramCode)

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		if domainErr := r.translate(err, student); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, r.sb.Select(studentColumns...).From("students").OrderBy("idnum ASC"))
}

// Search returns students where any textual column contains keyword
func (r *StudentRepository) Search(ctx context.Context, keyword string) ([]*models.Student, error) {
	return r.list(ctx, r.sb.Select(studentColumns...).
		From("students").
		Where(containsAny(keyword, studentTextColumns...)).
		OrderBy("idnum ASC"))
}

func (r *StudentRepository) list(ctx context.Context, stmt squirrel.SelectBuilder) ([]*models.Student, error) {
	students := []*models.Student{}
	err := r.db.Query(ctx, stmt, func(rows pgx.Rows) error {
		var (
			yearLevel int32
			program   pgtype.Text
		)
		student := &models.Student{}
		if err := rows.Scan(&student.IDNum, &student.FirstName, &student.LastName, &student.Sex, &yearLevel, &program); err != nil {
			return err
		}
		student.YearLevel = models.YearLevel(yearLevel)
		student.ProgramCode = textPtr(program)
		students = append(students, student)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	return students, nil
}

// Update replaces every column of the student identified by idNum
func (r *StudentRepository) Update(ctx context.Context, idNum string, student *models.Student) error {
	stmt := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"idnum":       student.IDNum,
			"firstname":   student.FirstName,
			"lastname":    student.LastName,
			"sex":         student.Sex,
			"yearlevel":   int32(student.YearLevel),
			"programcode": student.ProgramCode,
		}).
		Where(squirrel.Eq{"idnum": idNum})

	affected, err := r.db.Exec(ctx, stmt)
	if err != nil {
		if domainErr := r.translate(err, student); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Student not found")
	}
	return nil
}

// Delete removes a student. Deleting a missing id is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, idNum string) error {
	if _, err := r.db.Exec(ctx, r.sb.Delete("students").Where(squirrel.Eq{"idnum": idNum})); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.db.Count(ctx, r.sb.Select("COUNT(*)").From("students"))
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return n, nil
}
