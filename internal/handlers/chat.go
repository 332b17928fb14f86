package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"wellmade-relay/internal/models"
	"wellmade-relay/internal/services"
)

type chatRelay interface {
	Relay(ctx context.Context, req models.ChatRequest) ([]byte, error)
}

type ChatHandler struct {
	relay chatRelay
	log   *zap.Logger
}

func NewChatHandler(relay *services.RelayService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{relay: relay, log: log}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	// An empty body is treated as a request without messages.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.internalError(w, r, err)
		return
	}

	body, err := h.relay.Relay(r.Context(), req)
	if err != nil {
		var rejected *services.TopicRejectedError
		var upErr *services.UpstreamError
		switch {
		case errors.As(err, &rejected):
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: rejected.Message})
		case errors.As(err, &upErr):
			writeJSON(w, upErr.StatusCode, models.ErrorResponse{Error: "OpenAI API Error", Details: upErr.Details})
		default:
			h.internalError(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *ChatHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("chat relay failed",
		zap.Error(err),
		zap.String("request_id", w.Header().Get("X-Request-ID")),
	)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Error:   "Internal Server Error",
		Details: err.Error(),
	})
}
