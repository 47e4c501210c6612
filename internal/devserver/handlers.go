package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type handlers struct {
	store *Store
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.store.List(), "")
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string         `json:"text"`
		Priority model.Priority `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	t, err := h.store.Create(req.Text, req.Priority)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusCreated, t, "Todo created")
}

func (h *handlers) toggle(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Toggle(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, t, "")
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	var p Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	t, err := h.store.Update(chi.URLParam(r, "id"), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, http.StatusOK, t, "Todo updated")
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Todo deleted"})
}

func (h *handlers) deleteCompleted(w http.ResponseWriter, r *http.Request) {
	n := h.store.DeleteCompleted()
	writeData(w, http.StatusOK, map[string]int{"deletedCount": n}, "")
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.store.Stats(), "")
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Todo not found")
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Text is required and priority must be low, medium or high")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeData(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
