package onedrive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSource_MissingConfig(t *testing.T) {
	tests := []struct {
		name string
		deps TokenSourceDependencies
	}{
		{
			name: "all missing",
			deps: TokenSourceDependencies{},
		},
		{
			name: "secret missing",
			deps: TokenSourceDependencies{ClientID: "id", TenantID: "tenant"},
		},
		{
			name: "tenant missing",
			deps: TokenSourceDependencies{ClientID: "id", ClientSecret: "secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewTokenSource(tt.deps)

			_, err := source.Token(context.Background())
			assert.ErrorIs(t, err, ErrConfigMissing)
		})
	}
}

func TestTokenSource_Exchange(t *testing.T) {
	var gotPath string

	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"graph-token","token_type":"Bearer","expires_in":3599}`))
	}))
	defer idp.Close()

	source := NewTokenSource(TokenSourceDependencies{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TenantID:     "tenant-id",
		LoginBaseURL: idp.URL,
	})

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "graph-token", token)
	assert.Equal(t, "/tenant-id/oauth2/v2.0/token", gotPath)
}

func TestTokenSource_ExchangeRejected(t *testing.T) {
	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client","error_description":"client secret rejected"}`))
	}))
	defer idp.Close()

	source := NewTokenSource(TokenSourceDependencies{
		ClientID:     "client-id",
		ClientSecret: "wrong-secret",
		TenantID:     "tenant-id",
		LoginBaseURL: idp.URL,
	})

	_, err := source.Token(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigMissing)
}
