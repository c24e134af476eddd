// Package cli implements the yatube command line: the HTTP server and the
// administrative commands that operate on its database.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/msomdec/yatube/internal/config"
	"github.com/msomdec/yatube/internal/repository/sqlite"
	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app carries state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	dbPath     string

	cfg       *config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "yatube",
		Short:         "Yatube blogging server",
		Long:          "Serve the yatube blog and administer its groups and users.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.DatabasePath = a.dbPath
			}
			a.cfg = cfg

			a.logCloser = setupLogging(cfg, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("YATUBE_CONFIG"), "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (overrides config)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newGroupCmd(a),
		newUserCmd(a),
	)
	return rootCmd
}

// openDB opens the configured database and applies pending migrations.
func (a *app) openDB(ctx context.Context) (*sqlite.DB, error) {
	db, err := sqlite.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
