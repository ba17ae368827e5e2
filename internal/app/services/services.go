package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
	"github.com/webssis/ssis/internal/pkg/auth"
	"github.com/webssis/ssis/internal/pkg/email"
)

// Services defined in this package:
// - CollegeService, ProgramService, StudentService: CRUD, search and counts
// - AuthService: registration, login and the user list
// - NotificationService: the welcome email
type Services struct {
	CollegeService      CollegeService
	ProgramService      ProgramService
	StudentService      StudentService
	AuthService         AuthService
	NotificationService NotificationService
}

// NewServices wires every service over the given repositories and mailer
func NewServices(repos *repositories.Repositories, mailer email.EmailService, hasher *auth.Hasher, logger zerolog.Logger) *Services {
	notifications := NewNotificationService(mailer, logger)
	return &Services{
		CollegeService:      NewCollegeService(repos.CollegeRepository),
		ProgramService:      NewProgramService(repos.ProgramRepository),
		StudentService:      NewStudentService(repos.StudentRepository),
		AuthService:         NewAuthService(repos.UserRepository, hasher, notifications, logger),
		NotificationService: notifications,
	}
}

// requireFields returns a validation error naming every blank field, in the
// order given. names and values are parallel.
func requireFields(names []string, values ...string) error {
	var missing []string
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, names[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
}
