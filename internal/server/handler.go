// Package server exposes the vocabulary, history and translation operations over HTTP/JSON.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/at-ishikawa/monglot/internal/history"
	"github.com/at-ishikawa/monglot/internal/translation"
	"github.com/at-ishikawa/monglot/internal/validation"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

type VocabularyStore interface {
	List(ctx context.Context) (map[string]string, error)
	GetOrCreate(ctx context.Context, word, translation string) (vocabulary.LookupResult, error)
	Update(ctx context.Context, word, translation string) (string, error)
	Delete(ctx context.Context, word string) (string, error)
}

type HistoryLog interface {
	Append(ctx context.Context, en, mnw string) (history.Record, error)
	List(ctx context.Context) ([]history.Record, error)
}

type Translator interface {
	Translate(ctx context.Context, req translation.Request) (json.RawMessage, error)
	Configured() bool
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the HTTP API. Each route performs a single store or gateway operation.
type Handler struct {
	vocabulary VocabularyStore
	history    HistoryLog
	translator Translator
	db         Pinger
	validator  *validation.Validator
}

func NewHandler(vocabularyStore VocabularyStore, historyLog HistoryLog, translator Translator, db Pinger) (*Handler, error) {
	validator, err := validation.New("json")
	if err != nil {
		return nil, fmt.Errorf("validation.New() > %w", err)
	}
	return &Handler{
		vocabulary: vocabularyStore,
		history:    historyLog,
		translator: translator,
		db:         db,
		validator:  validator,
	}, nil
}

// Routes registers every endpoint on a new ServeMux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vocab", h.listVocabulary)
	mux.HandleFunc("POST /api/vocab", h.createVocabulary)
	mux.HandleFunc("PUT /api/vocab/{word}", h.updateVocabulary)
	mux.HandleFunc("DELETE /api/vocab/{word}", h.deleteVocabulary)
	mux.HandleFunc("POST /api/history", h.appendHistory)
	mux.HandleFunc("GET /api/history", h.listHistory)
	mux.HandleFunc("POST /api/translate", h.translate)
	mux.HandleFunc("GET /debug-key", h.debugKey)
	mux.HandleFunc("GET /healthz", h.healthz)
	return mux
}

func (h *Handler) debugKey(w http.ResponseWriter, r *http.Request) {
	answer := "NO"
	if h.translator.Configured() {
		answer = "YES"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(answer))
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}
