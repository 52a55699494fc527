package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/critter-backend/internal/app"
	"github.com/heartmarshall/critter-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "critterctl",
		Short:        "Operate the critter backend",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				return os.Setenv("CONFIG_PATH", configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config YAML (overrides CONFIG_PATH)")

	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

// loadConfig reads the application config and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
