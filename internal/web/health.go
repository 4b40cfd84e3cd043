package web

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Name:    s.settings.Metadata.Name,
		Version: s.settings.Metadata.Version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	}

	writeJSON(w, response, http.StatusOK)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
