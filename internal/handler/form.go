package handler

import (
	"encoding/json"
	"net/http"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/form"
)

// FormHandler implements HTTP handlers for FormDefinition.
type FormHandler struct {
	client *ent.Client
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(client *ent.Client) *FormHandler {
	return &FormHandler{client: client}
}

type createFormRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"`
	States      []string        `json:"states,omitempty"`
}

func (h *FormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	audit, ok := parseAuditContext(w, r)
	if !ok {
		return
	}
	var req createFormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}

	schema := &form.Node{}
	if len(req.Schema) > 0 {
		if err := json.Unmarshal(req.Schema, schema); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SCHEMA", err.Error())
			return
		}
	}

	states := req.States
	if len(states) == 0 {
		states = []string{behavior.DefaultEntryState}
	}

	builder := h.client.FormDefinition.Create().
		SetName(req.Name).
		SetSchema(schema).
		SetStates(states).
		SetCreatedBy(audit.Actor).
		SetUpdatedBy(audit.Actor).
		SetSource(formdefinition.Source(audit.Source))

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if audit.CorrelationID != nil {
		builder.SetCorrelationID(*audit.CorrelationID)
	}

	f, err := builder.Save(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	recordEvent(r.Context(), event.NewFormCreated(event.FormCreatedPayload{
		FormID:     f.ID.String(),
		Name:       f.Name,
		States:     f.States,
		FieldCount: len(form.ExtractFields(f.Schema)),
	}))
	writeJSON(w, http.StatusCreated, f)
}

func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	pg := parsePagination(r)
	items, err := h.client.FormDefinition.Query().
		Limit(pg.Limit).Offset(pg.Offset).
		Order(ent.Asc(formdefinition.FieldName)).
		All(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type updateFormRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema,omitempty"`
	States      []string        `json:"states,omitempty"`
}

func (h *FormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	audit, ok := parseAuditContext(w, r)
	if !ok {
		return
	}
	var req updateFormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	builder := h.client.FormDefinition.UpdateOneID(id).
		SetUpdatedBy(audit.Actor).
		SetSource(formdefinition.Source(audit.Source))
	if audit.CorrelationID != nil {
		builder.SetCorrelationID(*audit.CorrelationID)
	}

	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	schemaChanged := false
	if len(req.Schema) > 0 {
		schema := &form.Node{}
		if err := json.Unmarshal(req.Schema, schema); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SCHEMA", err.Error())
			return
		}
		builder.SetSchema(schema)
		schemaChanged = true
	}
	if req.States != nil {
		builder.SetStates(req.States)
	}

	f, err := builder.Save(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	if schemaChanged {
		recordEvent(r.Context(), event.NewFormSchemaUpdated(event.FormSchemaUpdatedPayload{
			FormID:     f.ID.String(),
			Name:       f.Name,
			FieldCount: len(form.ExtractFields(f.Schema)),
		}))
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.client.FormDefinition.DeleteOneID(id).Exec(r.Context()); err != nil {
		entErrorToHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFields returns the addressable fields of a form, re-derived from the
// stored schema on every call.
func (h *FormHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form.ExtractFields(f.Schema))
}
