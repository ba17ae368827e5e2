package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/db"
	"github.com/webssis/ssis/internal/pkg/apperrors"
	"github.com/webssis/ssis/internal/pkg/dberrors"
)

var collegeColumns = []string{"collegecode", "collegename"}

// ICollegeRepository defines the college data operations
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	GetAll(ctx context.Context) ([]*models.College, error)
	Update(ctx context.Context, code string, college *models.College) error
	Delete(ctx context.Context, code string) error
	Search(ctx context.Context, keyword string) ([]*models.College, error)
	Count(ctx context.Context) (int64, error)
}

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db *db.Gateway
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(gw *db.Gateway) *CollegeRepository {
	return &CollegeRepository{
		db: gw,
		sb: statementBuilder(),
	}
}

// Create inserts a college. A taken code yields a conflict error.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	stmt := r.sb.Insert("colleges").
		Columns(collegeColumns...).
		Values(college.Code, college.Name)

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("College code already exists")
		}
		return fmt.Errorf("error creating college: %w", err)
	}
	return nil
}

// GetAll retrieves all colleges
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	return r.list(ctx, r.sb.Select(collegeColumns...).From("colleges").OrderBy("collegecode ASC"))
}

// Search returns colleges whose code or name contains keyword
func (r *CollegeRepository) Search(ctx context.Context, keyword string) ([]*models.College, error) {
	return r.list(ctx, r.sb.Select(collegeColumns...).
		From("colleges").
		Where(containsAny(keyword, collegeColumns...)).
		OrderBy("collegecode ASC"))
}

func (r *CollegeRepository) list(ctx context.Context, stmt squirrel.SelectBuilder) ([]*models.College, error) {
	colleges := []*models.College{}
	err := r.db.Query(ctx, stmt, func(rows pgx.Rows) error {
		college := &models.College{}
		if err := rows.Scan(&college.Code, &college.Name); err != nil {
			return err
		}
		colleges = append(colleges, college)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	return colleges, nil
}

// Update replaces the college identified by code. college.Code may differ
// from code; the schema cascades the rename to programs.
func (r *CollegeRepository) Update(ctx context.Context, code string, college *models.College) error {
	stmt := r.sb.Update("colleges").
		SetMap(map[string]interface{}{
			"collegecode": college.Code,
			"collegename": college.Name,
		}).
		Where(squirrel.Eq{"collegecode": code})

	affected, err := r.db.Exec(ctx, stmt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("College code already exists")
		}
		return fmt.Errorf("error updating college: %w", err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("College not found")
	}
	return nil
}

// Delete detaches dependent programs and removes the college in one
// transaction. Deleting a missing code is a no-op.
func (r *CollegeRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *db.Gateway) error {
		detach := r.sb.Update("programs").
			Set("collegecode", nil).
			Where(squirrel.Eq{"collegecode": code})
		if _, err := tx.Exec(ctx, detach); err != nil {
			return fmt.Errorf("error detaching programs from college: %w", err)
		}

		if _, err := tx.Exec(ctx, r.sb.Delete("colleges").Where(squirrel.Eq{"collegecode": code})); err != nil {
			return fmt.Errorf("error deleting college: %w", err)
		}
		return nil
	})
}

// Count returns the number of colleges
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.db.Count(ctx, r.sb.Select("COUNT(*)").From("colleges"))
	if err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return n, nil
}
