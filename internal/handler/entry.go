package handler

import (
	"fmt"
	"net/http"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/form"
)

// EntryHandler implements HTTP handlers for FormEntry.
type EntryHandler struct {
	client *ent.Client
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(client *ent.Client) *EntryHandler {
	return &EntryHandler{client: client}
}

type submitEntryRequest struct {
	State string         `json:"state"`
	Data  map[string]any `json:"data"`
}

// SubmitEntry records a data submission against a form in one workflow
// state. Values for hidden fields are stripped rather than rejected, and
// required editable fields must be present — both checks run against the
// same rules the viewer rendered with.
func (h *EntryHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	audit, ok := parseAuditContext(w, r)
	if !ok {
		return
	}
	var req submitEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.State == "" {
		writeError(w, http.StatusBadRequest, "MISSING_STATE", "state is required")
		return
	}

	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	if err := validateState(f.States, req.State); err != nil {
		writeError(w, http.StatusBadRequest, "UNKNOWN_STATE", err.Error())
		return
	}
	bundles, err := loadBundles(r.Context(), h.client, id, f.States)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	entryState := behavior.DefaultEntryState
	if len(f.States) > 0 {
		entryState = f.States[0]
	}
	m := behavior.MatrixFromBundles(bundles)
	if behavior.ResolveReadOnly(bundles, m, req.State, entryState) {
		writeError(w, http.StatusConflict, "READ_ONLY_STATE",
			fmt.Sprintf("state %q does not accept submissions", req.State))
		return
	}

	data := req.Data
	if data == nil {
		data = map[string]any{}
	}
	b := behavior.ResolveAction(bundles, req.State)
	for _, row := range b.Rows {
		c := behavior.CellFromRow(row)
		switch c.Mode {
		case behavior.ModeHidden:
			delete(data, row.FieldName)
		case behavior.ModeEditable:
			if c.Required {
				if v, ok := data[row.FieldName]; !ok || v == nil || v == "" {
					writeError(w, http.StatusBadRequest, "MISSING_REQUIRED",
						fmt.Sprintf("field %q is required in state %q", row.FieldName, req.State))
					return
				}
			}
		}
	}

	builder := h.client.FormEntry.Create().
		SetFormID(id).
		SetState(req.State).
		SetData(data).
		SetCreatedBy(audit.Actor).
		SetUpdatedBy(audit.Actor).
		SetSource(formentry.Source(audit.Source))
	if audit.CorrelationID != nil {
		builder.SetCorrelationID(*audit.CorrelationID)
	}

	e, err := builder.Save(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	recordEvent(r.Context(), event.NewEntrySubmitted(event.EntrySubmittedPayload{
		FormID:     id.String(),
		EntryID:    e.ID.String(),
		State:      e.State,
		FieldCount: len(form.ExtractFields(f.Schema)),
	}))
	writeJSON(w, http.StatusCreated, e)
}

func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	pg := parsePagination(r)
	q := h.client.FormEntry.Query().
		Where(formentry.HasFormWith(formdefinition.IDEQ(id)))
	if state := r.URL.Query().Get("state"); state != "" {
		q = q.Where(formentry.StateEQ(state))
	}
	items, err := q.
		Limit(pg.Limit).Offset(pg.Offset).
		Order(ent.Desc(formentry.FieldCreatedAt)).
		All(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.client.FormEntry.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
