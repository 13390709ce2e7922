package onedrive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const GraphAPIBaseURL = "https://graph.microsoft.com/v1.0"

// Provisioner ensures the root/company/job-title folder hierarchy exists in
// the configured drive and returns the deepest folder's public URL. Every
// level is an idempotent upsert-by-name: list children, match, create on
// miss. Concurrent calls for the same new name can race and create two
// folders; no locking is applied.
type Provisioner struct {
	tokens     *TokenSource
	httpClient *http.Client

	baseURL    string
	rootFolder string
}

type ProvisionerDependencies struct {
	TokenSource *TokenSource

	// RootFolder is the fixed top-level folder name. Defaults to
	// "Job Applications".
	RootFolder string

	// BaseURL overrides the Graph API endpoint, used in tests.
	BaseURL    string
	HTTPClient *http.Client
}

func NewProvisioner(deps ProvisionerDependencies) *Provisioner {
	provisioner := &Provisioner{
		tokens:     deps.TokenSource,
		httpClient: deps.HTTPClient,
		baseURL:    deps.BaseURL,
		rootFolder: deps.RootFolder,
	}

	if provisioner.baseURL == "" {
		provisioner.baseURL = GraphAPIBaseURL
	}
	if provisioner.rootFolder == "" {
		provisioner.rootFolder = "Job Applications"
	}
	if provisioner.httpClient == nil {
		provisioner.httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return provisioner
}

type driveItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"webUrl"`
}

// ProvisionJobFolder acquires a fresh token and ensures the
// root/company/job-title hierarchy, each level sanitized independently.
// It returns "" when the credentials are missing or any Graph call fails;
// the caller treats "" as "no folder available", never as a hard error.
func (p *Provisioner) ProvisionJobFolder(ctx context.Context, companyName, jobTitle string) string {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrConfigMissing) {
			log.Debug().Msg("OneDrive provisioning skipped, credentials not configured")
		} else {
			log.Warn().Err(err).Msg("Failed to acquire OneDrive access token")
		}
		return ""
	}

	levels := []string{
		SanitizeName(p.rootFolder),
		SanitizeName(companyName),
		SanitizeName(jobTitle),
	}

	return p.EnsurePath(ctx, token, levels)
}

// EnsurePath walks the given levels from the drive root, descending into an
// existing child on a name match and creating the folder otherwise. The
// deepest level's webUrl is returned, or "" when the token is empty or any
// list/create call fails.
func (p *Provisioner) EnsurePath(ctx context.Context, token string, levels []string) string {
	if token == "" {
		return ""
	}

	parentID := ""
	folderURL := ""

	for _, name := range levels {
		item, err := p.findChild(ctx, token, parentID, name)
		if err != nil {
			log.Warn().Err(err).Str("folder", name).Msg("Failed to list drive children")
			return ""
		}

		if item == nil {
			item, err = p.createChild(ctx, token, parentID, name)
			if err != nil {
				log.Warn().Err(err).Str("folder", name).Msg("Failed to create drive folder")
				return ""
			}
		}

		parentID = item.ID
		folderURL = item.WebURL
	}

	return folderURL
}

// findChild scans the children of the given container for an exact,
// case-sensitive name match. The listing is unpaginated; containers with
// more children than one page holds can miss matches.
func (p *Provisioner) findChild(ctx context.Context, token, parentID, name string) (*driveItem, error) {
	respBody, err := p.makeRequest(ctx, token, http.MethodGet, p.childrenEndpoint(parentID), nil)
	if err != nil {
		return nil, err
	}

	var listing struct {
		Value []driveItem `json:"value"`
	}
	if err := json.Unmarshal(respBody, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse children listing: %w", err)
	}

	for _, item := range listing.Value {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}

	return nil, nil
}

func (p *Provisioner) createChild(ctx context.Context, token, parentID, name string) (*driveItem, error) {
	reqBody := map[string]interface{}{
		"name":                              name,
		"folder":                            map[string]interface{}{},
		"@microsoft.graph.conflictBehavior": "rename",
	}

	respBody, err := p.makeRequest(ctx, token, http.MethodPost, p.childrenEndpoint(parentID), reqBody)
	if err != nil {
		return nil, err
	}

	var item driveItem
	if err := json.Unmarshal(respBody, &item); err != nil {
		return nil, fmt.Errorf("failed to parse created folder: %w", err)
	}

	return &item, nil
}

func (p *Provisioner) childrenEndpoint(parentID string) string {
	if parentID == "" {
		return "/me/drive/root/children"
	}
	return fmt.Sprintf("/me/drive/items/%s/children", parentID)
}

func (p *Provisioner) makeRequest(ctx context.Context, token, method, endpoint string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Graph API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
