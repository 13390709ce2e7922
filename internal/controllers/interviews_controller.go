package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// InterviewStore is the record-store surface the interview endpoints
// depend on.
type InterviewStore interface {
	InsertInterview(ctx context.Context, interview *domain.Interview) (string, error)
	ListInterviews(ctx context.Context, start, end *time.Time) ([]domain.Interview, error)
}

// InterviewsController handles the interview endpoints.
type InterviewsController struct {
	interviews InterviewStore
}

type InterviewsControllerDependencies struct {
	InterviewStore InterviewStore
}

func NewInterviewsController(deps InterviewsControllerDependencies) *InterviewsController {
	return &InterviewsController{
		interviews: deps.InterviewStore,
	}
}

// ScheduleInterview stores a new interview entry.
func (c *InterviewsController) ScheduleInterview(ctx fiber.Ctx) error {
	var interview domain.Interview

	if err := ctx.Bind().Body(&interview); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if interview.Status == "" {
		interview.Status = domain.InterviewScheduled
	}

	id, err := c.interviews.InsertInterview(ctx.RequestCtx(), &interview)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Interview scheduled successfully",
		"interview_id": id,
	})
}

// GetInterviews lists interviews, optionally bounded to a date range given
// as RFC 3339 start and end query parameters.
func (c *InterviewsController) GetInterviews(ctx fiber.Ctx) error {
	start, err := parseTimeQuery(ctx.Query("start"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid start date")
	}

	end, err := parseTimeQuery(ctx.Query("end"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid end date")
	}

	interviews, err := c.interviews.ListInterviews(ctx.RequestCtx(), start, end)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(interviews)
}

func parseTimeQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
