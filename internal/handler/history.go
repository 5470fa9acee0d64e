package handler

import (
	"net/http"
	"time"

	"github.com/formstate/formstate/internal/history"
)

// HistoryHandler serves the recorded history of a form.
type HistoryHandler struct {
	store history.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

type historyResponse struct {
	Entries    []history.Entry `json:"entries"`
	NextCursor string          `json:"next_cursor,omitempty"`
	TotalCount int             `json:"total_count"`
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	opts := history.QueryOptions{
		Limit:  parsePagination(r).Limit,
		Cursor: r.URL.Query().Get("cursor"),
	}
	if types, present := r.URL.Query()["event_type"]; present {
		opts.EventTypes = types
	}
	if v := r.URL.Query().Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SINCE", "since must be RFC 3339")
			return
		}
		opts.Since = &t
	}

	entries, next, total, err := h.store.QueryByForm(r.Context(), id.String(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, historyResponse{
		Entries:    entries,
		NextCursor: next,
		TotalCount: total,
	})
}
