package handlers

import (
	"net/http"

	"wellmade-relay/internal/models"
)

type HealthHandler struct {
	env string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:      "OK",
		Message:     "Server is running",
		Environment: h.env,
	})
}
