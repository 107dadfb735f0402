package cmd

import (
	"os"

	"attractionapi/db"
	"attractionapi/repository"
	"attractionapi/seed"
	"attractionapi/services"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load locations, attractions and services from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return errors.Wrap(err, "open seed file")
			}
			defer f.Close()
			loader := seed.NewLoader(
				services.NewLocationService(repository.NewLocationRepository(db.Instance), log),
				services.NewAttractionService(repository.NewAttractionRepository(db.Instance), log),
				log,
			)
			result, err := loader.Load(f)
			cmd.Printf("created %d locations and %d attractions\n", result.Locations, result.Attractions)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "YAML file to load")
	return cmd
}
