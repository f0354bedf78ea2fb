package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/services"
)

// RecommendHandler relays the decorative placeholder card.
type RecommendHandler struct {
	service services.RecommendServiceProvider
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(service services.RecommendServiceProvider) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// Get fetches the placeholder record from the upstream and relays it.
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Fetch(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch recommendation")
		http.Error(w, "Recommendation unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
