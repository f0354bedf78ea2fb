package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/auth"
	"github.com/viremo/viremo-be/internal/services"
)

// ActivityHandler handles HTTP requests for the weekly activity chart.
type ActivityHandler struct {
	service services.ActivityServiceProvider
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(service services.ActivityServiceProvider) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetWeekly returns the caller's sign-in counts bucketed into the fixed
// Sunday-first week, plus the derived motivational message.
func (h *ActivityHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	activity, err := h.service.WeeklyActivity(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to aggregate activity")
		http.Error(w, "Failed to retrieve activity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}
