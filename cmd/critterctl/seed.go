package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/critter-backend/internal/app"
	"github.com/heartmarshall/critter-backend/internal/app/seeder"
)

func newSeedCmd() *cobra.Command {
	var (
		file        string
		seederCfg   string
		dryRun      bool
		stopOnError bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load customers, pets, employees and schedules from a fixtures file",
		Long: `Loads a JSON fixtures file through the service layer against the configured store.
Pets refer to customers, and schedules to pets and employees, by their index in the file.
The ids assigned to each record are printed per phase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			scfg, err := seeder.LoadConfig(seederCfg)
			if err != nil {
				return err
			}
			// Flags override config.
			if file != "" {
				scfg.FixturesPath = file
			}
			if dryRun {
				scfg.DryRun = true
			}
			if stopOnError {
				scfg.StopOnError = true
			}
			if scfg.FixturesPath == "" {
				return errors.New("fixtures file is required (--file or SEEDER_FIXTURES)")
			}

			fx, err := seeder.LoadFixtures(scfg.FixturesPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c, err := app.NewContainer(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer c.Close()

			p := seeder.NewPipeline(log, c.Customers, c.Pets, c.Employees, c.Schedules, *scfg)
			if err := p.Run(ctx, fx); err != nil {
				return err
			}

			for _, phase := range []string{seeder.PhaseCustomers, seeder.PhasePets, seeder.PhaseEmployees, seeder.PhaseSchedules} {
				r := p.Results()[phase]
				cmd.Printf("%-10s inserted=%d errors=%d ids=%v\n", phase, r.Inserted, r.Errors, p.IDs(phase))
			}

			if p.HasErrors() {
				log.Warn("seed completed with errors")
				return errors.New("seed: some fixtures were rejected")
			}
			log.Info("seed completed", slog.String("store", c.StoreDriver()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "fixtures JSON file")
	cmd.Flags().StringVar(&seederCfg, "seeder-config", "", "path to seeder YAML config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate fixtures without saving")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "abort on the first rejected fixture")
	return cmd
}
