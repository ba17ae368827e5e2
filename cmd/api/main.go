package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	appRepos "github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/bootstrap"
	"github.com/webssis/ssis/internal/db"
	"github.com/webssis/ssis/internal/pkg/logger"
	"github.com/webssis/ssis/internal/seed"
	"github.com/webssis/ssis/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "ssis",
		Usage: "Web SSIS back end: colleges, programs, students and users over REST",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   filepath.Join("configs", "config.yaml"),
				Usage:   "path to the YAML config file",
				EnvVars: []string{"SSIS_CONFIG"},
			},
		},
		// serve is the default so the binary can be started without arguments
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API until SIGINT or SIGTERM",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending SQL migrations and exit",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "insert a starter set of colleges and programs",
				Action: seedData,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		// Error details are logged within the bootstrap functions
		logger.Error().Err(err).Msg("Application exited with an error")
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.Context, c.String("config"))
	if err != nil {
		return err
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(c.Context, cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	return bootstrap.RunMigrations(c.Context, pool, cfg, lgr)
}

func seedData(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(c.Context, cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := appRepos.NewRepositories(db.NewGateway(pool, cfg.QueryTimeout(), lgr))
	return seed.CreateDefaultData(c.Context, repos.CollegeRepository, repos.ProgramRepository, lgr)
}
