package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcoot/pokerledger/internal/config"
	"github.com/mcoot/pokerledger/internal/console"
	"github.com/mcoot/pokerledger/internal/factory"
	"github.com/mcoot/pokerledger/internal/services/table"
)

func newPlayCmd() *cobra.Command {
	var storageType, sqlitePath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the ledger in this terminal",
		Long: `Run the ledger locally with an interactive table instead of talking
to a server. Storage settings come from the same environment (and .env) as the
server, so a shared SQLite file or Redis instance shows the same session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := config.Load()
			if err != nil {
				return err
			}
			if storageType != "" {
				appCfg.StorageType = storageType
			}
			if sqlitePath != "" {
				appCfg.SQLitePath = sqlitePath
			}

			ptermLogger := pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)
			if cfg.Verbose {
				ptermLogger = ptermLogger.WithLevel(pterm.LogLevelDebug)
			}
			logger := slog.New(pterm.NewSlogHandler(ptermLogger))

			surface := console.NewSurface(cmd.OutOrStdout(), logger)
			factoryCfg := factory.FromConfig(appCfg, logger)
			factoryCfg.Surfaces = []table.Surface{surface}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := factory.New(ctx, factoryCfg)
			if err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
			defer func() { _ = app.Close() }()

			return console.NewLoop(app.Controller, console.NewPrompter(), surface, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&storageType, "storage", "", "Storage backend: memory, redis, sqlite (env: STORAGE_TYPE)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file (env: SQLITE_PATH)")

	return cmd
}
