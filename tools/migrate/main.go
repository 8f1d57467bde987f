package main

import (
	"context"
	"fmt"
	"os"

	"github.com/orgball2608/forum-tweet-bot/internal/db"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the forum-tweet-bot database schema",
		SilenceUsage: true,
	}

	root.AddCommand(
		migrationCmd("up", "Apply all pending migrations", "Migrations applied successfully", (*db.Postgres).Up),
		migrationCmd("down", "Roll back the latest migration", "Migration rollback successful", (*db.Postgres).Down),
		migrationCmd("reset", "Roll back every migration", "All migrations have been rolled back", (*db.Postgres).Reset),
		migrationCmd("status", "Print the status of every migration", "", (*db.Postgres).Status),
		versionCmd(),
	)
	return root
}

func connect() (*db.Postgres, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return db.NewConnect(cfg)
}

func migrationCmd(use, short, done string, run func(*db.Postgres, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer pg.Close()

			if err := run(pg, cmd.Context()); err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			if done != "" {
				cmd.Println(done)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer pg.Close()

			version, err := pg.Version(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Schema version: %d\n", version)
			return nil
		},
	}
}
