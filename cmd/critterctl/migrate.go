package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/critter-backend/internal/config"
	"github.com/heartmarshall/critter-backend/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect PostgreSQL schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider, log *slog.Logger) error {
				results, err := p.Up(ctx)
				for _, r := range results {
					cmd.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
				}
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				log.Info("migrations applied", slog.Int("count", len(results)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider, log *slog.Logger) error {
				r, err := p.Down(ctx)
				if errors.Is(err, goose.ErrNoNextVersion) {
					cmd.Println("nothing to roll back")
					return nil
				}
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				cmd.Printf("rolled back %s (%s)\n", r.Source.Path, r.Duration)
				log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider, _ *slog.Logger) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					cmd.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
				}
				return nil
			}),
		},
	)
	return cmd
}

type providerFunc func(ctx context.Context, cmd *cobra.Command, p *goose.Provider, log *slog.Logger) error

// withProvider opens the configured database and hands a goose provider over
// the embedded migrations to fn.
func withProvider(fn providerFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		dsn, err := migrationDSN(cfg)
		if err != nil {
			return err
		}

		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("goose provider: %w", err)
		}
		return fn(ctx, cmd, p, log)
	}
}

// migrationDSN returns the database DSN, which migrations need whatever store driver is selected.
func migrationDSN(cfg *config.Config) (string, error) {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		return "", errors.New("database.dsn is required for migrations (set DATABASE_DSN)")
	}
	return dsn, nil
}
