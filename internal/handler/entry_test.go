package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formstate/formstate/internal/behavior"
)

// seedIntakeBehaviors makes full_name required and email hidden in the
// entry state, and everything read-only in review.
func seedIntakeBehaviors(t *testing.T, router http.Handler, formID string) {
	t.Helper()
	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+formID+"/matrix", behavior.Matrix{
		"full_name": {
			"entry":  {Mode: behavior.ModeEditable, Required: true},
			"review": {Mode: behavior.ModeReadOnly},
		},
		"email": {
			"entry":  {Mode: behavior.ModeHidden},
			"review": {Mode: behavior.ModeReadOnly},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
}

func TestSubmitEntry(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")
	seedIntakeBehaviors(t, router, id)

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "entry",
		"data":  map[string]any{"full_name": "Ada Lovelace"},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created struct {
		ID    string         `json:"id"`
		State string         `json:"state"`
		Data  map[string]any `json:"data"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "entry", created.State)
	assert.Equal(t, "Ada Lovelace", created.Data["full_name"])
}

func TestSubmitEntryMissingRequired(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")
	seedIntakeBehaviors(t, router, id)

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "entry",
		"data":  map[string]any{"full_name": ""},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_REQUIRED")
}

func TestSubmitEntryStripsHiddenValues(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")
	seedIntakeBehaviors(t, router, id)

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "entry",
		"data": map[string]any{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created struct {
		Data map[string]any `json:"data"`
	}
	decodeBody(t, w, &created)
	assert.NotContains(t, created.Data, "email", "hidden field values are stripped")
}

func TestSubmitEntryReadOnlyState(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")
	seedIntakeBehaviors(t, router, id)

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "review",
		"data":  map[string]any{"full_name": "Ada Lovelace"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "READ_ONLY_STATE")
}

func TestSubmitEntryUnknownState(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEntriesFiltersByState(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")

	for _, name := range []string{"one", "two"} {
		w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
			"state": "entry",
			"data":  map[string]any{"full_name": name},
		})
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	}

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/entries?state=entry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []struct {
		State string `json:"state"`
	}
	decodeBody(t, w, &entries)
	require.Len(t, entries, 2)

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/entries?state=review", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &entries)
	assert.Empty(t, entries)
}

func TestGetEntry(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPost, "/v1/forms/"+id+"/entries", map[string]any{
		"state": "entry",
		"data":  map[string]any{"full_name": "Ada"},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = doRequest(t, router, http.MethodGet, "/v1/entries/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		State string `json:"state"`
	}
	decodeBody(t, w, &got)
	assert.Equal(t, "entry", got.State)
}
