package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/db"
	"github.com/webssis/ssis/internal/pkg/apperrors"
	"github.com/webssis/ssis/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *db.Gateway
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(gw *db.Gateway) *UserRepository {
	return &UserRepository{
		db: gw,
		sb: statementBuilder(),
	}
}

// Create inserts a user whose Password already holds a hash and returns the
// generated userid.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	stmt := r.sb.Insert("users").
		Columns("username", "useremail", "userpass").
		Values(user.Username, user.Email, user.Password).
		Suffix("RETURNING userid")

	var id int64
	if err := r.db.QueryRow(ctx, stmt, &id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.NewConflictError("Username already exists")
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// GetByUsername loads a user including the stored hash
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	stmt := r.sb.Select("userid", "username", "useremail", "userpass").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1)

	user := &models.User{}
	if err := r.db.QueryRow(ctx, stmt, &user.ID, &user.Username, &user.Email, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}
	return user, nil
}

// GetAll lists users without reading the password column
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	stmt := r.sb.Select("userid", "username", "useremail").
		From("users").
		OrderBy("userid ASC")

	users := []*models.User{}
	err := r.db.Query(ctx, stmt, func(rows pgx.Rows) error {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email); err != nil {
			return err
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	return users, nil
}
