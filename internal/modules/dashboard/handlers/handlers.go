// Package handlers provides HTTP handlers for the investment dashboard.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aristath/investlab/internal/modules/dashboard"
	"github.com/aristath/investlab/internal/modules/export"
	"github.com/aristath/investlab/internal/modules/screening"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"

	// maxBodyBytes bounds a criteria request body
	maxBodyBytes = 64 << 10
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *dashboard.Service
	log     zerolog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(service *dashboard.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "dashboard").Logger(),
	}
}

// HandleGetOptions handles GET /api/dashboard/options
func (h *Handler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, r, http.StatusOK, h.service.Options())
}

// HandleGetSnapshot handles GET /api/dashboard with criteria in the query string
func (h *Handler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query(), h.service.DefaultCriteria())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSnapshot(w, r, criteria)
}

// HandlePostSnapshot handles POST /api/dashboard with criteria as a JSON body.
// Fields left out of the body keep their default values.
func (h *Handler) HandlePostSnapshot(w http.ResponseWriter, r *http.Request) {
	criteria, err := decodeCriteria(http.MaxBytesReader(w, r.Body, maxBodyBytes), h.service.DefaultCriteria())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondSnapshot(w, r, criteria)
}

// HandleGetCharts handles GET /api/dashboard/charts
func (h *Handler) HandleGetCharts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query(), h.service.DefaultCriteria())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	snap, err := h.service.Snapshot(criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResponse(w, r, http.StatusOK, snap.Charts)
}

// HandleExport handles GET /api/export/{target}
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	target, err := export.ParseTarget(chi.URLParam(r, "target"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	criteria, err := parseCriteria(r.URL.Query(), h.service.DefaultCriteria())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	f, err := h.service.Export(target, criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.Header().Set("X-Export-Id", f.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(f.Data); err != nil {
		h.log.Error().Err(err).Str("export_id", f.ID).Msg("Failed to write export")
	}
}

func (h *Handler) respondSnapshot(w http.ResponseWriter, r *http.Request, criteria screening.FilterCriteria) {
	snap, err := h.service.Snapshot(criteria)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResponse(w, r, http.StatusOK, snap)
}

// writeResponse encodes data as msgpack when the client asks for it, JSON otherwise
func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack) {
		body, err := msgpack.Marshal(data)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to encode msgpack response")
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeMsgpack)
		w.WriteHeader(status)
		if _, err := w.Write(body); err != nil {
			h.log.Error().Err(err).Msg("Failed to write msgpack response")
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError maps domain errors to status codes
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("Dashboard request failed")
	} else {
		h.log.Debug().Err(err).Str("path", r.URL.Path).Msg("Rejected dashboard request")
	}
	h.writeResponse(w, r, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, screening.ErrInvalidCriteria):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrUnknownTarget):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
