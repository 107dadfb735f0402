package cmd

import (
	"os"

	"attractionapi/config"
	"attractionapi/db"
	"attractionapi/logger"
	"attractionapi/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "attractionapi",
		Short:        "Tourist attractions, locations and services API",
		SilenceUsage: true,
	}
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	return cmd
}

// setup loads the config, builds the logger and opens + migrates the database
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.New(cfg.DebugMode, cfg.LogLevel)
	if err = db.Init(cfg); err != nil {
		return nil, log, err
	}
	if err = models.Migrate(db.Instance); err != nil {
		return nil, log, errors.Wrap(err, "migrate")
	}
	log.Info().Str("driver", db.Instance.Dialector.Name()).Msg("database ready")
	return cfg, log, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and columns, then exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _, err := setup()
			return err
		},
	}
}
