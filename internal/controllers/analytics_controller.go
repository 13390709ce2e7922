package controllers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// AnalyticsProvider computes the aggregate activity report.
type AnalyticsProvider interface {
	Analytics(ctx context.Context) (domain.AnalyticsReport, error)
}

// AnalyticsController handles the analytics endpoint.
type AnalyticsController struct {
	analytics AnalyticsProvider
}

type AnalyticsControllerDependencies struct {
	Analytics AnalyticsProvider
}

func NewAnalyticsController(deps AnalyticsControllerDependencies) *AnalyticsController {
	return &AnalyticsController{
		analytics: deps.Analytics,
	}
}

// GetAnalytics returns totals, per-status and per-company counts plus the
// completed-interview ratio.
func (c *AnalyticsController) GetAnalytics(ctx fiber.Ctx) error {
	report, err := c.analytics.Analytics(ctx.RequestCtx())
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(report)
}
