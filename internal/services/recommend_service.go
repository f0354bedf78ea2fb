package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/viremo/viremo-be/internal/models"
)

// RecommendServiceProvider defines the interface for the decorative
// recommendation card.
type RecommendServiceProvider interface {
	Fetch(ctx context.Context) (models.Recommendation, error)
}

// RecommendService fetches one placeholder text record from a public demo
// endpoint. The content is unrelated to the user's data.
type RecommendService struct {
	url    string
	client *http.Client
}

// NewRecommendService creates a new RecommendService.
func NewRecommendService(url string) *RecommendService {
	return &RecommendService{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Fetch retrieves the placeholder record. Failures are surfaced to the
// caller; there are no retries.
func (s *RecommendService) Fetch(ctx context.Context) (models.Recommendation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return models.Recommendation{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("failed to fetch recommendation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Recommendation{}, fmt.Errorf("recommendation upstream returned %d", resp.StatusCode)
	}

	var rec models.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return models.Recommendation{}, fmt.Errorf("failed to decode recommendation: %w", err)
	}
	return rec, nil
}
