package onedrive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	LoginBaseURL = "https://login.microsoftonline.com"
	GraphScope   = "https://graph.microsoft.com/.default"
)

// ErrConfigMissing indicates that one or more of the OneDrive client
// credentials is not configured. Callers treat it as "provisioning
// disabled" rather than a hard error.
var ErrConfigMissing = errors.New("onedrive client credentials not configured")

// TokenSource obtains short-lived Graph API access tokens through the
// client-credentials grant. Tokens are fetched fresh per call and never
// persisted.
type TokenSource struct {
	clientID     string
	clientSecret string
	tenantID     string

	loginBaseURL string
	httpClient   *http.Client
}

type TokenSourceDependencies struct {
	ClientID     string
	ClientSecret string
	TenantID     string

	// LoginBaseURL overrides the identity provider endpoint, used in tests.
	LoginBaseURL string
	HTTPClient   *http.Client
}

func NewTokenSource(deps TokenSourceDependencies) *TokenSource {
	source := &TokenSource{
		clientID:     deps.ClientID,
		clientSecret: deps.ClientSecret,
		tenantID:     deps.TenantID,
		loginBaseURL: deps.LoginBaseURL,
		httpClient:   deps.HTTPClient,
	}

	if source.loginBaseURL == "" {
		source.loginBaseURL = LoginBaseURL
	}
	if source.httpClient == nil {
		source.httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return source
}

// Token performs a single client-credentials exchange and returns the
// access token. There is no retry and no caching; a failed exchange aborts
// the provisioning chain for the current request.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if s.clientID == "" || s.clientSecret == "" || s.tenantID == "" {
		return "", ErrConfigMissing
	}

	config := &clientcredentials.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", s.loginBaseURL, s.tenantID),
		Scopes:       []string{GraphScope},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("identity provider returned no access token")
	}

	return token.AccessToken, nil
}
