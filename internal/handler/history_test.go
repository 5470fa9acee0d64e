package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/history"
)

// newHistoryRouter wires the handlers and the history endpoint around one
// shared store, with the package recorder writing into it.
func newHistoryRouter(t *testing.T) http.Handler {
	t.Helper()
	client := newTestClient(t)
	store := history.NewMemoryStore()

	SetRecorder(event.NewHistoryRecorder(store))
	t.Cleanup(func() { SetRecorder(nil) })

	fh := NewFormHandler(client)
	bh := NewBehaviorHandler(client)
	eh := NewEntryHandler(client)
	hh := NewHistoryHandler(store)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/forms", fh.CreateForm)
		r.Put("/forms/{id}/matrix", bh.PutMatrix)
		r.Post("/forms/{id}/entries", eh.SubmitEntry)
		r.Get("/forms/{id}/history", hh.GetHistory)
	})
	return r
}

func TestGetHistoryRecordsLifecycle(t *testing.T) {
	router := newHistoryRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {"entry": {Mode: behavior.ModeEditable}},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "entry",
		"data":  map[string]any{"full_name": "Ada"},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entries    []history.Entry `json:"entries"`
		TotalCount int             `json:"total_count"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 3, resp.TotalCount)

	// Newest first.
	assert.Equal(t, "entry_submitted", resp.Entries[0].EventType)
	assert.Equal(t, "behaviors_updated", resp.Entries[1].EventType)
	assert.Equal(t, "form_created", resp.Entries[2].EventType)
}

func TestGetHistoryFiltersByEventType(t *testing.T) {
	router := newHistoryRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {"entry": {Mode: behavior.ModeEditable}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/history?event_type=behaviors_updated", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entries []history.Entry `json:"entries"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "behaviors_updated", resp.Entries[0].EventType)
}

func TestGetHistoryRejectsBadSince(t *testing.T) {
	router := newHistoryRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/history?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistorySinceWindow(t *testing.T) {
	router := newHistoryRouter(t)
	id := createTestForm(t, router, "entry")

	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/history?since="+future, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entries []history.Entry `json:"entries"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Entries)
}
