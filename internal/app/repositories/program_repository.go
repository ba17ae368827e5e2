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

var programColumns = []string{"programcode", "programname", "collegecode"}

// IProgramRepository defines the program data operations
type IProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetAll(ctx context.Context) ([]*models.Program, error)
	Update(ctx context.Context, code string, program *models.Program) error
	Delete(ctx context.Context, code string) error
	Search(ctx context.Context, keyword string) ([]*models.Program, error)
	Count(ctx context.Context) (int64, error)
}

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db *db.Gateway
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(gw *db.Gateway) *ProgramRepository {
	return &ProgramRepository{
		db: gw,
		sb: statementBuilder(),
	}
}

// translate maps constraint violations to domain errors and returns nil for
// anything else.
func (r *ProgramRepository) translate(err error, program *models.Program) error {
	switch {
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.NewConflictError("Program code already exists")
	case dberrors.IsForeignKeyError(err):
		return apperrors.NewInvalidReferenceError(fmt.Sprintf("College '%s' does not exist", deref(program.CollegeCode)))
	}
	return nil
}

// Create inserts a program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	stmt := r.sb.Insert("programs").
		Columns(programColumns...).
		Values(program.Code, program.Name, program.CollegeCode)

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		if domainErr := r.translate(err, program); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("error creating program: %w", err)
	}
	return nil
}

// GetAll retrieves all programs
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	return r.list(ctx, r.sb.Select(programColumns...).From("programs").OrderBy("programcode ASC"))
}

// Search returns programs whose code, name or college code contains keyword
func (r *ProgramRepository) Search(ctx context.Context, keyword string) ([]*models.Program, error) {
	return r.list(ctx, r.sb.Select(programColumns...).
		From("programs").
		Where(containsAny(keyword, programColumns...)).
		OrderBy("programcode ASC"))
}

func (r *ProgramRepository) list(ctx context.Context, stmt squirrel.SelectBuilder) ([]*models.Program, error) {
	programs := []*models.Program{}
	err := r.db.Query(ctx, stmt, func(rows pgx.Rows) error {
		var college pgtype.Text
		program := &models.Program{}
		if err := rows.Scan(&program.Code, &program.Name, &college); err != nil {
			return err
		}
		program.CollegeCode = textPtr(college)
		programs = append(programs, program)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	return programs, nil
}

// Update replaces the program identified by code. A renamed code cascades
// to students.
func (r *ProgramRepository) Update(ctx context.Context, code string, program *models.Program) error {
	stmt := r.sb.Update("programs").
		SetMap(map[string]interface{}{
			"programcode": program.Code,
			"programname": program.Name,
			"collegecode": program.CollegeCode,
		}).
		Where(squirrel.Eq{"programcode": code})

	affected, err := r.db.Exec(ctx, stmt)
	if err != nil {
		if domainErr := r.translate(err, program); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("error updating program: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Program not found")
	}
	return nil
}

// Delete detaches enrolled students and removes the program in one
// transaction. Deleting a missing code is a no-op.
func (r *ProgramRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *db.Gateway) error {
		detach := r.sb.Update("students").
			Set("programcode", nil).
			Where(squirrel.Eq{"programcode": code})
		if _, err := tx.Exec(ctx, detach); err != nil {
			return fmt.Errorf("error detaching students from program: %w", err)
		}

		if _, err := tx.Exec(ctx, r.sb.Delete("programs").Where(squirrel.Eq{"programcode": code})); err != nil {
			return fmt.Errorf("error deleting program: %w", err)
		}
		return nil
	})
}

// Count returns the number of programs
func (r *ProgramRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.db.Count(ctx, r.sb.Select("COUNT(*)").From("programs"))
	if err != nil {
		return 0, fmt.Errorf("error counting programs: %w", err)
	}
	return n, nil
}
