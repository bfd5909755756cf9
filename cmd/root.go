package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Start() {
	cfg := newCfg("env")
	slog.SetLogLoggerLevel(slog.Level(cfg.GetInt("log.level")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var answers []string

	checkinCmd := &cobra.Command{
		Use:   "checkin <secret>",
		Short: "Validate a scanned ticket against the local cache and record the admission",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCheckinCmd(ctx, args[0], answers)
		},
	}
	checkinCmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "check-in answer as <question-id>=<value>, repeatable")

	rootCmd := &cobra.Command{}
	cmd := []*cobra.Command{
		{
			Use:   "sync",
			Short: "Download catalog and order data for the configured event",
			Run: func(cmd *cobra.Command, args []string) {
				runSyncCmd(ctx)
			},
		},
		checkinCmd,
		{
			Use:   "upload",
			Short: "Upload queued offline redemptions until interrupted",
			Run: func(cmd *cobra.Command, args []string) {
				runUploadCmd(ctx)
			},
		},
		{
			Use:   "search <query>",
			Short: "Search cached order positions by attendee name, email or order code",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runSearchCmd(ctx, args[0])
			},
		},
		{
			Use:   "reset",
			Short: "Clear all cached data and checkpoints for the configured event",
			Run: func(cmd *cobra.Command, args []string) {
				runResetCmd(ctx)
			},
		},
	}

	rootCmd.AddCommand(cmd...)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
