package handler

import (
	"net/http"

	"item-catalog/internal/model"
)

// HealthStatusRunning is the fixed liveness status.
const HealthStatusRunning = "Running"

// Health handles GET /health. It never touches dependencies.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: HealthStatusRunning})
}
