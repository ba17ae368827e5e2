package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/webssis/ssis/internal/app/models"
	appRepos "github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// defaultCollege is a college together with the programs it offers
type defaultCollege struct {
	college  appModels.College
	programs []appModels.Program
}

var defaults = []defaultCollege{
	{
		college: appModels.College{Code: "CCS", Name: "College of Computer Studies"},
		programs: []appModels.Program{
			{Code: "BSCS", Name: "Bachelor of Science in Computer Science"},
			{Code: "BSIT", Name: "Bachelor of Science in Information Technology"},
		},
	},
	{
		college: appModels.College{Code: "COE", Name: "College of Engineering"},
		programs: []appModels.Program{
			{Code: "BSCE", Name: "Bachelor of Science in Civil Engineering"},
			{Code: "BSEE", Name: "Bachelor of Science in Electrical Engineering"},
		},
	},
}

// CreateDefaultData inserts a starter set of colleges and programs.
// Rows that already exist are left untouched, so running it twice is harmless.
func CreateDefaultData(ctx context.Context, colleges appRepos.ICollegeRepository, programs appRepos.IProgramRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Colleges/Programs)...")
	var finalErr error // collect errors without stopping the process

	created := 0
	for _, d := range defaults {
		college := d.college
		if err := colleges.Create(ctx, &college); err != nil {
			if !errors.Is(err, apperrors.ErrConflict) {
				lgr.Error().Err(err).Str("collegecode", college.Code).Msg("Error creating default college")
				finalErr = errors.Join(finalErr, err)
				// programs would fail the foreign key
				continue
			}
		} else {
			created++
		}

		for _, p := range d.programs {
			program := p
			code := college.Code
			program.CollegeCode = &code
			if err := programs.Create(ctx, &program); err != nil {
				if !errors.Is(err, apperrors.ErrConflict) {
					lgr.Error().Err(err).Str("programcode", program.Code).Msg("Error creating default program")
					finalErr = errors.Join(finalErr, err)
				}
				continue
			}
			created++
		}
	}

	if finalErr != nil {
		lgr.Warn().Int("created", created).Msg("Default data created with errors")
		return finalErr
	}
	lgr.Info().Int("created", created).Msg("Default data check complete")
	return nil
}
