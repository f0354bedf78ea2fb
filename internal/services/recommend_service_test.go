package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendService_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"hello","body":"world"}`))
	}))
	defer srv.Close()

	rec, err := NewRecommendService(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", rec.Title)
	assert.Equal(t, "world", rec.Body)
}

func TestRecommendService_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRecommendService(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestRecommendService_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewRecommendService(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}
