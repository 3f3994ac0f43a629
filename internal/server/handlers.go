package server

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/investlab/pkg/embedded"
)

// handleHealth reports liveness along with the build that is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	version := s.version
	if version == "" {
		version = "dev"
	}

	response := map[string]interface{}{
		"status":  "healthy",
		"service": "investlab",
		"version": version,
	}
	if s.gitCommit != "" {
		response["commit"] = s.gitCommit
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleDashboard serves the dashboard page from the embedded filesystem
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := embedded.Files.ReadFile("frontend/index.html")
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to read embedded index.html")
		http.Error(w, "Frontend not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to write index.html response")
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
