package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// ResumeStore is the record-store surface the resume endpoints depend on.
type ResumeStore interface {
	InsertResume(ctx context.Context, resume *domain.Resume) (string, error)
	ListResumesByCompany(ctx context.Context, companyName string) ([]domain.Resume, error)
	ListAllResumes(ctx context.Context) ([]domain.Resume, error)
}

// ResumesController handles the resume endpoints.
type ResumesController struct {
	resumes ResumeStore
}

type ResumesControllerDependencies struct {
	ResumeStore ResumeStore
}

func NewResumesController(deps ResumesControllerDependencies) *ResumesController {
	return &ResumesController{
		resumes: deps.ResumeStore,
	}
}

// AddResume stores a new resume version.
func (c *ResumesController) AddResume(ctx fiber.Ctx) error {
	var resume domain.Resume

	if err := ctx.Bind().Body(&resume); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if resume.CreatedAt == nil {
		now := time.Now()
		resume.CreatedAt = &now
	}

	id, err := c.resumes.InsertResume(ctx.RequestCtx(), &resume)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Resume saved successfully",
		"resume_id": id,
	})
}

// GetResumesByCompany lists resume versions stored for one company.
func (c *ResumesController) GetResumesByCompany(ctx fiber.Ctx) error {
	companyName := ctx.Params("company")

	resumes, err := c.resumes.ListResumesByCompany(ctx.RequestCtx(), companyName)
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(resumes)
}

// GetAllResumes lists every stored resume version.
func (c *ResumesController) GetAllResumes(ctx fiber.Ctx) error {
	resumes, err := c.resumes.ListAllResumes(ctx.RequestCtx())
	if err != nil {
		return storeError(err)
	}

	return ctx.Status(fiber.StatusOK).JSON(resumes)
}
