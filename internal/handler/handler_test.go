package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/formstate/formstate/ent"
	_ "github.com/formstate/formstate/ent/runtime"
	"github.com/formstate/formstate/internal/history"
)

// newTestClient opens an in-memory SQLite database scoped to the test.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

// newTestRouter mounts every handler the way the server does, so path
// parameters resolve through the chi routing context.
func newTestRouter(t *testing.T) (http.Handler, *ent.Client) {
	t.Helper()
	client := newTestClient(t)

	fh := NewFormHandler(client)
	bh := NewBehaviorHandler(client)
	eh := NewEntryHandler(client)
	hh := NewHistoryHandler(history.NewMemoryStore())

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/forms", fh.CreateForm)
		r.Get("/forms", fh.ListForms)
		r.Get("/forms/{id}", fh.GetForm)
		r.Patch("/forms/{id}", fh.UpdateForm)
		r.Delete("/forms/{id}", fh.DeleteForm)
		r.Get("/forms/{id}/fields", fh.ListFields)
		r.Get("/forms/{id}/matrix", bh.GetMatrix)
		r.Put("/forms/{id}/matrix", bh.PutMatrix)
		r.Get("/forms/{id}/bundles", bh.GetBundles)
		r.Get("/forms/{id}/render", bh.Render)
		r.Post("/forms/{id}/entries", eh.SubmitEntry)
		r.Get("/forms/{id}/entries", eh.ListEntries)
		r.Get("/entries/{id}", eh.GetEntry)
		r.Get("/forms/{id}/history", hh.GetHistory)
	})
	return r, client
}

// doRequest sends a JSON request through the router with audit headers set.
func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("X-Actor", "test-user")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

// testSchema is a two-field form with a display-only heading and a submit
// button, neither of which should surface as a field.
var testSchema = map[string]any{
	"type": "container",
	"components": []any{
		map[string]any{"type": "text", "text": "Applicant details"},
		map[string]any{"key": "full_name", "type": "textfield", "label": "Full name"},
		map[string]any{"key": "email", "type": "email"},
		map[string]any{"type": "button", "key": "submit", "label": "Submit"},
	},
}

// createTestForm creates a form with testSchema and the given states,
// returning its ID.
func createTestForm(t *testing.T, router http.Handler, states ...string) string {
	t.Helper()
	body := map[string]any{
		"name":   "intake",
		"schema": testSchema,
	}
	if len(states) > 0 {
		body["states"] = states
	}
	w := doRequest(t, router, http.MethodPost, "/v1/forms", body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}
