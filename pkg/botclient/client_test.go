package botclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req predictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what is a fever", req.Question)

		json.NewEncoder(w).Encode(map[string]string{"text": "an elevated body temperature"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-token", 5*time.Second)
	answer, err := client.Ask(context.Background(), "what is a fever")
	require.NoError(t, err)
	assert.Equal(t, "an elevated body temperature", answer)
}

func TestAskNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "t", 5*time.Second)
	_, err := client.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAskMissingTextField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"answer": "wrong shape"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "t", 5*time.Second)
	_, err := client.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing text")
}

func TestAskMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "t", 5*time.Second)
	_, err := client.Ask(context.Background(), "q")
	require.Error(t, err)
}

func TestAskTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "t", 50*time.Millisecond)
	_, err := client.Ask(context.Background(), "q")
	require.Error(t, err)
}
