package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/controllers"
	"github.com/jobdeck/jobdeck/internal/scheduler"
	"github.com/jobdeck/jobdeck/internal/server"
	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/pkg/integrations/notion"
	"github.com/jobdeck/jobdeck/pkg/integrations/onedrive"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the tracking backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	return cmd
}

func runServe() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	recordStore, err := store.Connect(connectCtx, config.MongoURI)
	if err != nil {
		return err
	}
	log.Info().Msg("Connected to MongoDB")

	tokenSource := onedrive.NewTokenSource(onedrive.TokenSourceDependencies{
		ClientID:     config.OneDriveClientID,
		ClientSecret: config.OneDriveClientSecret,
		TenantID:     config.OneDriveTenantID,
	})

	provisioner := onedrive.NewProvisioner(onedrive.ProvisionerDependencies{
		TokenSource: tokenSource,
		RootFolder:  config.OneDriveRootFolder,
	})

	workspace := notion.NewSync(notion.SyncDependencies{
		AccessToken: config.NotionToken,
		DatabaseID:  config.NotionDatabaseID,
		Folders:     provisioner,
	})

	if !workspace.Enabled() {
		log.Info().Msg("Notion sync disabled, token or database id not configured")
	}

	httpServer := server.NewHTTPServer(server.HTTPServerDependencies{
		AllowedOrigins: config.Origins(),
		JobsController: controllers.NewJobsController(controllers.JobsControllerDependencies{
			JobStore:  recordStore,
			Workspace: workspace,
		}),
		ResumesController: controllers.NewResumesController(controllers.ResumesControllerDependencies{
			ResumeStore: recordStore,
		}),
		InterviewsController: controllers.NewInterviewsController(controllers.InterviewsControllerDependencies{
			InterviewStore: recordStore,
		}),
		AnalyticsController: controllers.NewAnalyticsController(controllers.AnalyticsControllerDependencies{
			Analytics: recordStore,
		}),
		MaintenanceController: controllers.NewMaintenanceController(controllers.MaintenanceControllerDependencies{
			Store: recordStore,
		}),
	})

	cleanup := scheduler.NewCleanupScheduler(scheduler.CleanupSchedulerDependencies{
		Purger:     recordStore,
		MaxAgeDays: config.CleanupMaxAgeDays,
	})

	if err := cleanup.Start(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := httpServer.Listen(config.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
	}

	cleanup.Stop()

	closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelClose()

	if err := recordStore.Close(closeCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}

	log.Info().Msg("Service stopped")
	return nil
}
