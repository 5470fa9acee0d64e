package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formstate/formstate/internal/form"
)

func TestCreateFormDefaultsStates(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/v1/forms", map[string]any{
		"name":   "intake",
		"schema": testSchema,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created struct {
		Name   string   `json:"name"`
		States []string `json:"states"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "intake", created.Name)
	assert.Equal(t, []string{"entry"}, created.States)
}

func TestCreateFormRequiresName(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/v1/forms", map[string]any{
		"schema": testSchema,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFormRequiresActor(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/forms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Actor")
}

func TestGetFormNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFormRejectsBadID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/forms/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFormName(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router)

	w := doRequest(t, router, http.MethodPatch, "/v1/forms/"+id, map[string]any{
		"name": "renamed",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var updated struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "renamed", updated.Name)
}

func TestDeleteForm(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router)

	w := doRequest(t, router, http.MethodDelete, "/v1/forms/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/v1/forms/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFieldsSkipsDisplayNodes(t *testing.T) {
	router, _ := newTestRouter(t)
	id := createTestForm(t, router)

	w := doRequest(t, router, http.MethodGet, "/v1/forms/"+id+"/fields", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fields []form.Field
	decodeBody(t, w, &fields)
	require.Len(t, fields, 2)
	assert.Equal(t, "full_name", fields[0].Key)
	assert.Equal(t, "Full name", fields[0].Label)
	assert.Equal(t, "email", fields[1].Key)
	assert.Equal(t, "email", fields[1].Label, "label falls back to the key")
}
