package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/investlab/internal/modules/screening"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// writeWait bounds a single frame write
	writeWait = 10 * time.Second
	// maxMessageBytes bounds one criteria message
	maxMessageBytes = 64 << 10
)

// streamFrame is what the server sends for every criteria message
type streamFrame struct {
	Snapshot interface{} `json:"snapshot,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// HandleStream handles GET /api/stream/dashboard.
//
// On connect the server sends the snapshot for the default criteria. After
// that every client message is a complete criteria object and is answered with
// a fresh snapshot, or an error frame if the message does not decode or the
// criteria are invalid. Fields left out of a message keep their default values.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to accept dashboard websocket")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "unexpected shutdown")
	conn.SetReadLimit(maxMessageBytes)

	ctx := r.Context()
	h.log.Info().Str("remote", r.RemoteAddr).Msg("Dashboard client connected")

	if err := h.sendSnapshot(ctx, conn, h.service.DefaultCriteria()); err != nil {
		h.log.Warn().Err(err).Msg("Failed to send initial snapshot")
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				h.log.Info().Msg("Dashboard client disconnected")
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			h.log.Warn().Err(err).Msg("Failed to read criteria message")
			conn.Close(websocket.StatusUnsupportedData, "invalid criteria message")
			return
		}

		criteria, err := decodeCriteria(bytes.NewReader(data), h.service.DefaultCriteria())
		if err != nil {
			h.log.Debug().Err(err).Msg("Rejected criteria message")
			if err := h.writeFrame(ctx, conn, streamFrame{Error: err.Error()}); err != nil {
				h.log.Warn().Err(err).Msg("Failed to send error frame")
				return
			}
			continue
		}

		if err := h.sendSnapshot(ctx, conn, criteria); err != nil {
			h.log.Warn().Err(err).Msg("Failed to send snapshot")
			return
		}
	}
}

// sendSnapshot writes one frame; invalid criteria produce an error frame, not a disconnect
func (h *Handler) sendSnapshot(ctx context.Context, conn *websocket.Conn, criteria screening.FilterCriteria) error {
	var frame streamFrame
	snap, err := h.service.Snapshot(criteria)
	if err != nil {
		frame.Error = err.Error()
	} else {
		frame.Snapshot = snap
	}
	return h.writeFrame(ctx, conn, frame)
}

func (h *Handler) writeFrame(ctx context.Context, conn *websocket.Conn, frame streamFrame) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return wsjson.Write(writeCtx, conn, frame)
}
