package secrets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsKeyValueMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/secrets", r.URL.Path)
		assert.Equal(t, "production", r.URL.Query().Get("environment"))
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"secrets": []map[string]string{
				{"key": "DATABASE_URL", "value": "postgres://remote"},
				{"key": "SECRET_KEY", "value": "k"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "svc-token", "production")
	secrets, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DATABASE_URL": "postgres://remote",
		"SECRET_KEY":   "k",
	}, secrets)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad", "production")
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "t", "production")
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
}
