package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/monglot/internal/translation"
	"github.com/at-ishikawa/monglot/internal/validation"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

const maxRequestBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// decodeRequest reads a JSON body into dst and validates it. Any failure is a *validation.Error.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validation.NewError("invalid JSON body: %v", err)
	}
	if err := h.validator.Struct(dst); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to write response", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}

// writeError maps err onto a status code. Causes of server-side failures are logged, not returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
	writeJSON(w, r, status, errorResponse{Error: message})
}

func classifyError(err error) (int, string) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, vocabulary.ErrNotFound):
		return http.StatusNotFound, vocabulary.ErrNotFound.Error()
	case errors.Is(err, translation.ErrTranslationFailed):
		return http.StatusInternalServerError, translation.ErrTranslationFailed.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
