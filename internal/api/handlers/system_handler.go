package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/monitoring"
)

// SystemHandler exposes a one-shot host snapshot for operators.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Get returns current CPU, memory, and uptime figures.
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := monitoring.Snapshot()
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect system snapshot")
		http.Error(w, "Failed to collect system snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
