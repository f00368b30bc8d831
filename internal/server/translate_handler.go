package server

import (
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/monglot/internal/translation"
)

// translate relays the model's JSON reply as the response body.
func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req translation.Request
	if err := h.decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.translator.Translate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(reply); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to write response", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}
