package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobdeck",
		Short: "Job-application tracking backend",
		Long: `Jobdeck is a job-application tracking backend. It stores submissions in
MongoDB, mirrors them into a Notion database and provisions per-application
OneDrive folders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewCleanupCommand())

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
