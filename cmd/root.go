package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"ads-manager/internal/config"
	"ads-manager/internal/db"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "ads-manager",
		Short:         "Ad campaign manager with a conversational assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.New(os.Stdout)
			return nil
		},
	}

	serve := newServeCmd(a)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCmd(a), newSeedCmd(a))
	return root
}

func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		a.logger.Error("database connection error", slog.Any("error", err))
		return nil, err
	}
	return pool, nil
}

func newMigrateCmd(a *app) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			run, action := db.Migrate, "applied"
			if down {
				run, action = db.Rollback, "rolled back"
			}
			if err := run(a.cfg.Psql.Addr.String()); err != nil {
				a.logger.Error("migration error", slog.Any("error", err))
				return err
			}
			a.logger.Info("migrations " + action)
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo user with sample campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool); err != nil {
				a.logger.Error("seed error", slog.Any("error", err))
				return err
			}
			a.logger.Info("demo data seeded", slog.String("email", db.DemoEmail))
			return nil
		},
	}
}
