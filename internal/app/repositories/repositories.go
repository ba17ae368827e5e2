package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/webssis/ssis/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	ProgramRepository *ProgramRepository
	StudentRepository *StudentRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories on one gateway
func NewRepositories(gw *db.Gateway) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(gw),
		ProgramRepository: NewProgramRepository(gw),
		StudentRepository: NewStudentRepository(gw),
		UserRepository:    NewUserRepository(gw),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsAny matches rows where any of columns contains keyword,
// case-insensitively. LIKE wildcards in keyword are matched literally and an
// empty keyword matches every row.
func containsAny(keyword string, columns ...string) squirrel.Sqlizer {
	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
