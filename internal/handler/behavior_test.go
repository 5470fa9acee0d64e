package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/form"
)

func TestGetMatrixCompletesEveryCell(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/matrix", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var m behavior.Matrix
	decodeBody(t, w, &m)
	require.Len(t, m, 2)
	for _, field := range []string{"full_name", "email"} {
		require.Contains(t, m, field)
		for _, state := range []string{"entry", "review"} {
			cell, ok := m[field][state]
			require.True(t, ok, "missing cell %s/%s", field, state)
			assert.Equal(t, behavior.DefaultCell, cell)
		}
	}
}

func TestPutMatrixReturnsBundles(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {
			"entry":  {Mode: behavior.ModeEditable, Required: true},
			"review": {Mode: behavior.ModeReadOnly},
		},
		"email": {
			"entry": {Mode: behavior.ModeEditable},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var bundles []behavior.Bundle
	decodeBody(t, w, &bundles)
	require.Len(t, bundles, 2)

	assert.Equal(t, "entry", bundles[0].State)
	assert.Equal(t, behavior.ActionUpdate, bundles[0].Action)
	require.Len(t, bundles[0].Rows, 2)

	assert.Equal(t, "review", bundles[1].State)
	assert.Equal(t, behavior.ActionView, bundles[1].Action)
}

func TestPutMatrixAcceptsBundleArray(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", []behavior.Bundle{{
		State:  "entry",
		Action: behavior.ActionUpdate,
		Rows: []behavior.Row{
			{FieldName: "full_name", ActionContext: behavior.ActionUpdate, Visible: true, Required: true},
		},
	}})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/matrix", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m behavior.Matrix
	decodeBody(t, w, &m)
	assert.Equal(t, behavior.Cell{Mode: behavior.ModeEditable, Required: true}, m["full_name"]["entry"])
}

func TestPutMatrixRejectsScalar(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", "not behaviors")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutMatrixMergesWithStored(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry", "review")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {"entry": {Mode: behavior.ModeEditable, Required: true}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second save touching only the review state must not wipe the
	// entry-state rule.
	w = doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {"review": {Mode: behavior.ModeReadOnly}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/matrix", nil)
	var m behavior.Matrix
	decodeBody(t, w, &m)
	assert.Equal(t, behavior.Cell{Mode: behavior.ModeEditable, Required: true}, m["full_name"]["entry"])
	assert.Equal(t, behavior.Cell{Mode: behavior.ModeReadOnly}, m["full_name"]["review"])
}

func TestRenderDropsHiddenFields(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodPut, "/v1/forms/"+id+"/matrix", behavior.Matrix{
		"full_name": {"entry": {Mode: behavior.ModeEditable, Required: true}},
		"email":     {"entry": {Mode: behavior.ModeHidden}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/render?state=entry", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var view form.Rendered
	decodeBody(t, w, &view)
	assert.Equal(t, "entry", view.State)
	assert.Equal(t, behavior.ActionUpdate, view.Action)
	assert.False(t, view.ReadOnly, "entry state accepts input")

	keys := collectKeys(view.Schema)
	assert.Contains(t, keys, "full_name")
	assert.NotContains(t, keys, "email")
}

func TestRenderUnknownState(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/render?state=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderRequiresState(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router, "entry")

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/render", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func collectKeys(n *form.Node) []string {
	if n == nil {
		return nil
	}
	keys := []string{}
	if n.Key != "" {
		keys = append(keys, n.Key)
	}
	for _, c := range n.Components {
		keys = append(keys, collectKeys(c)...)
	}
	return keys
}
