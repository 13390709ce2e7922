package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

const (
	NotionAPIVersion = "2022-06-28"
	NotionAPIBaseURL = "https://api.notion.com/v1"

	// maxDescriptionLength bounds the job description sent to Notion.
	maxDescriptionLength = 2000
)

// FolderProvisioner supplies the public URL of the per-application storage
// folder, or "" when none is available.
type FolderProvisioner interface {
	ProvisionJobFolder(ctx context.Context, companyName, jobTitle string) string
}

// Sync projects job applications into a Notion database, one page per
// application. Pages are write-only from this system's perspective and a
// failed publish never fails the caller's submission.
type Sync struct {
	accessToken string
	databaseID  string

	httpClient *http.Client
	baseURL    string
	folders    FolderProvisioner
}

type SyncDependencies struct {
	AccessToken string
	DatabaseID  string
	Folders     FolderProvisioner

	// BaseURL overrides the Notion API endpoint, used in tests.
	BaseURL    string
	HTTPClient *http.Client
}

func NewSync(deps SyncDependencies) *Sync {
	sync := &Sync{
		accessToken: deps.AccessToken,
		databaseID:  deps.DatabaseID,
		httpClient:  deps.HTTPClient,
		baseURL:     deps.BaseURL,
		folders:     deps.Folders,
	}

	if sync.baseURL == "" {
		sync.baseURL = NotionAPIBaseURL
	}
	if sync.httpClient == nil {
		sync.httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return sync
}

// Enabled reports whether the workspace integration is configured.
func (s *Sync) Enabled() bool {
	return s.accessToken != "" && s.databaseID != ""
}

// Publish creates a page for the given application in the target database.
// The status is translated to its display label, the description is
// truncated, and the provisioned folder URL is embedded when available.
func (s *Sync) Publish(ctx context.Context, job domain.JobApplication) error {
	folderURL := ""
	if s.folders != nil {
		folderURL = s.folders.ProvisionJobFolder(ctx, job.CompanyName, job.JobTitle)
	}

	properties := map[string]interface{}{
		"Company Name": map[string]interface{}{
			"title": []interface{}{
				map[string]interface{}{
					"text": map[string]interface{}{
						"content": job.CompanyName,
					},
				},
			},
		},
		"Job Title": map[string]interface{}{
			"rich_text": []interface{}{
				map[string]interface{}{
					"text": map[string]interface{}{
						"content": job.JobTitle,
					},
				},
			},
		},
		"URL": map[string]interface{}{
			"url": job.JobURL,
		},
		"Status": map[string]interface{}{
			"select": map[string]interface{}{
				"name": domain.StatusLabel(job.Status),
			},
		},
	}

	if job.JobType != "" {
		properties["Job Type"] = map[string]interface{}{
			"select": map[string]interface{}{
				"name": job.JobType,
			},
		}
	}

	if folderURL != "" {
		properties["Folder"] = map[string]interface{}{
			"url": folderURL,
		}
	}

	if job.JobDescription != "" {
		properties["Description"] = map[string]interface{}{
			"rich_text": []interface{}{
				map[string]interface{}{
					"text": map[string]interface{}{
						"content": truncateDescription(job.JobDescription),
					},
				},
			},
		}
	}

	reqBody := map[string]interface{}{
		"parent": map[string]interface{}{
			"type":        "database_id",
			"database_id": s.databaseID,
		},
		"properties": properties,
	}

	if _, err := s.makeRequest(ctx, http.MethodPost, "/pages", reqBody); err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	return nil
}

// truncateDescription caps the description at maxDescriptionLength
// characters, appending an ellipsis marker when it was cut.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= maxDescriptionLength {
		return description
	}
	return string(runes[:maxDescriptionLength]) + "..."
}

func (s *Sync) makeRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", NotionAPIVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Notion API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
