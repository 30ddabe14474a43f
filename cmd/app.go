package cmd

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

type app struct {
	cfg         config.Config
	log         *slog.Logger
	taskService *services.TaskService
}

// bootstrap wires configuration, logging and storage, and makes sure the
// tasks table exists before any command touches it.
func bootstrap(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.databaseDSN != "" {
		cfg.DatabaseDSN = opts.databaseDSN
	}

	log := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}

	taskRepo := repository.NewTaskRepository(config.NewSQLiteOpener(cfg.DatabaseDSN, cfg.LogLevel == "DEBUG"))
	if err := taskRepo.Initialize(cmd.Context()); err != nil {
		return nil, fmt.Errorf("initialize task store %s: %w", cfg.DatabaseDSN, err)
	}
	log.Debug("task store ready", "dsn", cfg.DatabaseDSN)

	return &app{
		cfg:         cfg,
		log:         log,
		taskService: services.NewTaskService(taskRepo),
	}, nil
}
