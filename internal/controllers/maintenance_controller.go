package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
)

const defaultCleanupDays = 30

// MaintenanceStore is the record-store surface the maintenance endpoints
// depend on.
type MaintenanceStore interface {
	Ping(ctx context.Context) error
	CountJobs(ctx context.Context) (int64, error)
	SampleJob(ctx context.Context) (map[string]interface{}, error)
	DeleteJobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceController handles the cleanup and connectivity endpoints.
type MaintenanceController struct {
	store MaintenanceStore
}

type MaintenanceControllerDependencies struct {
	Store MaintenanceStore
}

func NewMaintenanceController(deps MaintenanceControllerDependencies) *MaintenanceController {
	return &MaintenanceController{
		store: deps.Store,
	}
}

// Cleanup removes applications older than the given number of days
// (default 30).
func (c *MaintenanceController) Cleanup(ctx fiber.Ctx) error {
	days := defaultCleanupDays
	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid days parameter")
		}
		days = parsed
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := c.store.DeleteJobsOlderThan(ctx.RequestCtx(), cutoff)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       fmt.Sprintf("Successfully deleted %d old entries", deleted),
		"deleted_count": deleted,
	})
}

// TestDB verifies the store connection and reports basic collection state.
func (c *MaintenanceController) TestDB(ctx fiber.Ctx) error {
	if err := c.store.Ping(ctx.RequestCtx()); err != nil {
		return storeError(err)
	}

	count, err := c.store.CountJobs(ctx.RequestCtx())
	if err != nil {
		return storeError(err)
	}

	sample, err := c.store.SampleJob(ctx.RequestCtx())
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "connected",
		"job_count":  count,
		"sample_job": sample,
	})
}
