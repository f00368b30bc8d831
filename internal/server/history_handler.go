package server

import (
	"net/http"
	"time"
)

type appendHistoryRequest struct {
	EN  string `json:"en" validate:"required"`
	MNW string `json:"mnw" validate:"required"`
}

type appendHistoryResponse struct {
	ID  int64  `json:"id"`
	EN  string `json:"en"`
	MNW string `json:"mnw"`
}

type historyRecordResponse struct {
	ID        int64     `json:"id"`
	EN        string    `json:"en"`
	MNW       string    `json:"mnw"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) appendHistory(w http.ResponseWriter, r *http.Request) {
	var req appendHistoryRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.history.Append(r.Context(), req.EN, req.MNW)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, appendHistoryResponse{
		ID:  record.ID,
		EN:  record.EN,
		MNW: record.MNW,
	})
}

// listHistory returns every record, newest first.
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.history.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]historyRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, historyRecordResponse{
			ID:        record.ID,
			EN:        record.EN,
			MNW:       record.MNW,
			CreatedAt: record.CreatedAt,
		})
	}
	writeJSON(w, r, http.StatusOK, response)
}
