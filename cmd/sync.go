package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one TMDB sync pass",
	Long: `Sync walks every TMDB id in [from, to]. For each id it fetches the
movie and the TV series details, then stores both with their genres,
production companies, production countries and spoken languages.

Records already stored are left untouched. The first error ends the pass
and the command exits non-zero; the pass is recorded in the sync log
either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := setupLogger()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := newApplication(cfg, log, nil)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		syncLog, err := app.sync.Run(ctx, cfg.Sync.FromID, cfg.Sync.ToID)
		if err != nil {
			if syncLog != nil {
				return fmt.Errorf("sync %s stopped at id %d: %w", syncLog.RunID, syncLog.LastID, err)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"sync %s: ids %d-%d, movies %d created / %d existing, series %d created / %d existing, %d skipped\n",
			syncLog.RunID, syncLog.FromID, syncLog.ToID,
			syncLog.MoviesCreated, syncLog.MoviesExisting,
			syncLog.SeriesCreated, syncLog.SeriesExisting,
			syncLog.Skipped,
		)
		return nil
	},
}

func init() {
	syncCmd.Flags().Int("from", 1, "first TMDB id (inclusive)")
	syncCmd.Flags().Int("to", 99, "last TMDB id (inclusive)")
	syncCmd.Flags().Bool("skip-not-found", false, "skip ids missing upstream instead of stopping")

	_ = viper.BindPFlag("sync.from_id", syncCmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("sync.to_id", syncCmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("sync.skip_not_found", syncCmd.Flags().Lookup("skip-not-found"))

	rootCmd.AddCommand(syncCmd)
}
