package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/store"
)

func NewCleanupCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete applications older than the given number of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Delete entries older than this many days")

	return cmd
}

func runCleanup(days int) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	recordStore, err := store.Connect(ctx, config.MongoURI)
	if err != nil {
		return err
	}
	defer recordStore.Close(ctx)

	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := recordStore.DeleteJobsOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	log.Info().Int64("deleted", deleted).Int("days", days).Msg("Cleanup completed")
	return nil
}
