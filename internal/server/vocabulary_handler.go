package server

import (
	"net/http"
)

type createVocabularyRequest struct {
	Word        string `json:"word" validate:"required"`
	Translation string `json:"translation" validate:"required"`
}

type createVocabularyResponse struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Learned     bool   `json:"learned"`
}

type updateVocabularyRequest struct {
	Translation string `json:"translation" validate:"required"`
}

type updateVocabularyResponse struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

type deleteVocabularyResponse struct {
	Deleted bool   `json:"deleted"`
	Word    string `json:"word"`
}

func (h *Handler) listVocabulary(w http.ResponseWriter, r *http.Request) {
	words, err := h.vocabulary.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, words)
}

// createVocabulary answers 201 when the word was learned by this request and 200 when it already existed.
func (h *Handler) createVocabulary(w http.ResponseWriter, r *http.Request) {
	var req createVocabularyRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.vocabulary.GetOrCreate(r.Context(), req.Word, req.Translation)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Learned {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, createVocabularyResponse{
		Word:        result.Word,
		Translation: result.Translation,
		Learned:     result.Learned,
	})
}

func (h *Handler) updateVocabulary(w http.ResponseWriter, r *http.Request) {
	var req updateVocabularyRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	word, err := h.vocabulary.Update(r.Context(), r.PathValue("word"), req.Translation)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updateVocabularyResponse{
		Word:        word,
		Translation: req.Translation,
	})
}

func (h *Handler) deleteVocabulary(w http.ResponseWriter, r *http.Request) {
	word, err := h.vocabulary.Delete(r.Context(), r.PathValue("word"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deleteVocabularyResponse{
		Deleted: true,
		Word:    word,
	})
}
