package api

import (
	"encoding/json"
	"net/http"
	"time"

	"aero-club/tower/internal/common"
)

// ListResources handles GET /api/v1/resources
// Served through the fleet cache; the table changes rarely.
func (h *Handlers) ListResources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airplanes, err := h.deps.Services.Fleet.ListAirplanes(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch resources", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(airplanes)
	}
}
