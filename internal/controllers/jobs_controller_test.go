package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

type fakeJobStore struct {
	inserted      *domain.JobApplication
	insertErr     error
	jobs          []domain.JobApplication
	listStatus    string
	updatedID     string
	updatedFields map[string]interface{}
	updateErr     error
}

func (f *fakeJobStore) InsertJob(ctx context.Context, job *domain.JobApplication) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = job
	return "65f000000000000000000001", nil
}

func (f *fakeJobStore) ListJobs(ctx context.Context, status string) ([]domain.JobApplication, error) {
	f.listStatus = status
	return f.jobs, nil
}

func (f *fakeJobStore) UpdateJob(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updatedID = id
	f.updatedFields = fields
	return f.updateErr
}

type fakePublisher struct {
	enabled   bool
	published *domain.JobApplication
	err       error
}

func (f *fakePublisher) Enabled() bool {
	return f.enabled
}

func (f *fakePublisher) Publish(ctx context.Context, job domain.JobApplication) error {
	f.published = &job
	return f.err
}

func newJobsApp(jobs JobStore, workspace WorkspacePublisher) *fiber.App {
	controller := NewJobsController(JobsControllerDependencies{
		JobStore:  jobs,
		Workspace: workspace,
	})

	app := fiber.New()
	app.Post("/api/jobs", controller.CreateJob)
	app.Get("/api/jobs", controller.GetJobs)
	app.Put("/api/jobs/:id", controller.UpdateJob)

	return app
}

func postJSON(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return app.Test(req)
}

func TestCreateJob_DefaultsAndSuccess(t *testing.T) {
	jobs := &fakeJobStore{}
	workspace := &fakePublisher{enabled: true}
	app := newJobsApp(jobs, workspace)

	resp, err := postJSON(app, "/api/jobs", `{"company_name":"Acme","job_title":"Engineer","job_url":"http://x"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "65f000000000000000000001", response["id"])

	require.NotNil(t, jobs.inserted)
	assert.Equal(t, "Applied", jobs.inserted.Status)
	require.NotNil(t, jobs.inserted.ApplicationDate)
	assert.WithinDuration(t, time.Now(), *jobs.inserted.ApplicationDate, time.Minute)

	require.NotNil(t, workspace.published)
	assert.Equal(t, "Acme", workspace.published.CompanyName)
}

func TestCreateJob_KeepsProvidedStatus(t *testing.T) {
	jobs := &fakeJobStore{}
	app := newJobsApp(jobs, &fakePublisher{})

	resp, err := postJSON(app, "/api/jobs", `{"company_name":"Acme","job_title":"Engineer","job_url":"http://x","status":"interview"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, jobs.inserted)
	assert.Equal(t, "interview", jobs.inserted.Status)
}

func TestCreateJob_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no company", body: `{"job_title":"Engineer","job_url":"http://x"}`},
		{name: "no title", body: `{"company_name":"Acme","job_url":"http://x"}`},
		{name: "no url", body: `{"company_name":"Acme","job_title":"Engineer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobStore{}
			app := newJobsApp(jobs, &fakePublisher{})

			resp, err := postJSON(app, "/api/jobs", tt.body)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Nil(t, jobs.inserted)
		})
	}
}

func TestCreateJob_WorkspaceFailureIsolated(t *testing.T) {
	jobs := &fakeJobStore{}
	workspace := &fakePublisher{enabled: true, err: errors.New("notion unavailable")}
	app := newJobsApp(jobs, workspace)

	resp, err := postJSON(app, "/api/jobs", `{"company_name":"Acme","job_title":"Engineer","job_url":"http://x"}`)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, jobs.inserted)
	assert.NotNil(t, workspace.published)
}

func TestCreateJob_WorkspaceDisabledSkipsPublish(t *testing.T) {
	jobs := &fakeJobStore{}
	workspace := &fakePublisher{enabled: false}
	app := newJobsApp(jobs, workspace)

	resp, err := postJSON(app, "/api/jobs", `{"company_name":"Acme","job_title":"Engineer","job_url":"http://x"}`)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, workspace.published)
}

func TestGetJobs_StatusFilter(t *testing.T) {
	jobs := &fakeJobStore{jobs: []domain.JobApplication{{CompanyName: "Acme"}}}
	app := newJobsApp(jobs, &fakePublisher{})

	req := httptest.NewRequest("GET", "/api/jobs?status=applied", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "applied", jobs.listStatus)

	var listed []domain.JobApplication
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].CompanyName)
}

func TestUpdateJob_NotFound(t *testing.T) {
	jobs := &fakeJobStore{updateErr: store.ErrNotFound}
	app := newJobsApp(jobs, &fakePublisher{})

	req := httptest.NewRequest("PUT", "/api/jobs/65f000000000000000000002", strings.NewReader(`{"status":"offer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateJob_InvalidID(t *testing.T) {
	jobs := &fakeJobStore{updateErr: store.ErrInvalidID}
	app := newJobsApp(jobs, &fakePublisher{})

	req := httptest.NewRequest("PUT", "/api/jobs/not-an-id", strings.NewReader(`{"status":"offer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateJob_Success(t *testing.T) {
	jobs := &fakeJobStore{}
	app := newJobsApp(jobs, &fakePublisher{})

	req := httptest.NewRequest("PUT", "/api/jobs/65f000000000000000000002", strings.NewReader(`{"status":"offer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "65f000000000000000000002", jobs.updatedID)
	assert.Equal(t, "offer", jobs.updatedFields["status"])
	assert.Contains(t, jobs.updatedFields, "updated_at")
}
