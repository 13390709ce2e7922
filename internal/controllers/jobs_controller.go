package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

// JobStore is the record-store surface the jobs endpoints depend on.
type JobStore interface {
	InsertJob(ctx context.Context, job *domain.JobApplication) (string, error)
	ListJobs(ctx context.Context, status string) ([]domain.JobApplication, error)
	UpdateJob(ctx context.Context, id string, fields map[string]interface{}) error
}

// WorkspacePublisher mirrors an application into the external workspace.
// Publishing is a best-effort side channel and must never fail a submission.
type WorkspacePublisher interface {
	Enabled() bool
	Publish(ctx context.Context, job domain.JobApplication) error
}

// JobsController handles the job-application endpoints.
type JobsController struct {
	jobs      JobStore
	workspace WorkspacePublisher
}

type JobsControllerDependencies struct {
	JobStore  JobStore
	Workspace WorkspacePublisher
}

func NewJobsController(deps JobsControllerDependencies) *JobsController {
	return &JobsController{
		jobs:      deps.JobStore,
		workspace: deps.Workspace,
	}
}

// CreateJob persists a submitted application and mirrors it into the
// workspace. The submission succeeds as long as the record is stored, even
// when the workspace sync fails.
func (c *JobsController) CreateJob(ctx fiber.Ctx) error {
	var job domain.JobApplication

	if err := ctx.Bind().Body(&job); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if job.CompanyName == "" || job.JobTitle == "" || job.JobURL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "company_name, job_title and job_url are required")
	}

	if job.ApplicationDate == nil {
		now := time.Now()
		job.ApplicationDate = &now
	}
	if job.Status == "" {
		job.Status = "Applied"
	}

	id, err := c.jobs.InsertJob(ctx.RequestCtx(), &job)
	if err != nil {
		return storeError(err)
	}

	if c.workspace != nil && c.workspace.Enabled() {
		if err := c.workspace.Publish(ctx.RequestCtx(), job); err != nil {
			log.Warn().Err(err).
				Str("company", job.CompanyName).
				Str("job_title", job.JobTitle).
				Msg("Workspace sync failed")
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Job application saved successfully",
		"id":      id,
	})
}

// GetJobs lists applications, optionally filtered by status.
func (c *JobsController) GetJobs(ctx fiber.Ctx) error {
	status := ctx.Query("status")

	jobs, err := c.jobs.ListJobs(ctx.RequestCtx(), status)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(jobs)
}

// UpdateJob applies a partial update to an existing application.
func (c *JobsController) UpdateJob(ctx fiber.Ctx) error {
	id := ctx.Params("id")

	fields := map[string]interface{}{}
	if err := ctx.Bind().Body(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	fields["updated_at"] = time.Now()

	if err := c.jobs.UpdateJob(ctx.RequestCtx(), id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}
		if errors.Is(err, store.ErrInvalidID) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid job id")
		}
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Job updated successfully",
	})
}
