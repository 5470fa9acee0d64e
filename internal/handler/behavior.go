package handler

import (
	"context"
	"io"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/form"
)

// BehaviorHandler implements HTTP handlers for the behavior matrix, its
// bundle projection, and per-state rendering.
type BehaviorHandler struct {
	client *ent.Client
}

// NewBehaviorHandler creates a new BehaviorHandler.
func NewBehaviorHandler(client *ent.Client) *BehaviorHandler {
	return &BehaviorHandler{client: client}
}

// loadBundles reads the stored behavior rows of a form and arranges them in
// the form's state order, with rows for stale states appended after.
func loadBundles(ctx context.Context, client *ent.Client, formID uuid.UUID, states []string) ([]behavior.Bundle, error) {
	rows, err := client.FormBehavior.Query().
		Where(formbehavior.HasFormWith(formdefinition.IDEQ(formID))).
		All(ctx)
	if err != nil {
		return nil, err
	}

	byState := make(map[string]behavior.Bundle, len(rows))
	for _, fb := range rows {
		byState[fb.State] = behavior.Bundle{
			State:  fb.State,
			Action: behavior.Action(fb.Action),
			Rows:   fb.Rows,
		}
	}

	bundles := make([]behavior.Bundle, 0, len(byState))
	for _, state := range states {
		if b, ok := byState[state]; ok {
			bundles = append(bundles, b)
			delete(byState, state)
		}
	}
	stale := make([]string, 0, len(byState))
	for state := range byState {
		stale = append(stale, state)
	}
	sort.Strings(stale)
	for _, state := range stale {
		bundles = append(bundles, byState[state])
	}
	return bundles, nil
}

// GetMatrix returns the form's behavior matrix, completed against the
// current fields and states. Completion happens on read and is never stored:
// the field and state sets may have grown since the matrix was last saved.
func (h *BehaviorHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	bundles, err := loadBundles(r.Context(), h.client, id, f.States)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	fields := form.ExtractFields(f.Schema)
	keys := make([]string, len(fields))
	for i, fld := range fields {
		keys[i] = fld.Key
	}
	m := behavior.EnsureAllCells(behavior.MatrixFromBundles(bundles), keys, f.States)
	writeJSON(w, http.StatusOK, m)
}

// GetBundles returns the row-oriented bundle projection of the stored rules.
func (h *BehaviorHandler) GetBundles(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	bundles, err := loadBundles(r.Context(), h.client, id, f.States)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundles)
}

// PutMatrix replaces a form's behaviors. The body is either a matrix object
// or a bundle array — the same loader handles both, so an exported behaviors
// file can be posted back unchanged. The uploaded document is authoritative
// for every cell it defines; cells it does not mention keep their stored
// value.
func (h *BehaviorHandler) PutMatrix(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	audit, ok := parseAuditContext(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	r.Body.Close()

	uploaded, err := behavior.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BEHAVIORS", err.Error())
		return
	}

	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	stored, err := loadBundles(r.Context(), h.client, id, f.States)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	merged := behavior.Overlay(behavior.MatrixFromBundles(stored), uploaded)

	// Project over the live states plus any stale states still carrying
	// cells, so orphaned rules survive a save round trip.
	states := append([]string(nil), f.States...)
	live := make(map[string]bool, len(states))
	for _, s := range states {
		live[s] = true
	}
	var extra []string
	for _, cells := range merged {
		for state := range cells {
			if !live[state] {
				live[state] = true
				extra = append(extra, state)
			}
		}
	}
	sort.Strings(extra)
	states = append(states, extra...)

	bundles := behavior.BundlesFromMatrix(merged, states)
	if err := h.saveBundles(r, id, bundles, audit); err != nil {
		entErrorToHTTP(w, err)
		return
	}

	editable := 0
	for _, b := range bundles {
		if b.Action == behavior.ActionUpdate {
			editable++
		}
	}
	recordEvent(r.Context(), event.NewBehaviorsUpdated(event.BehaviorsUpdatedPayload{
		FormID:         id.String(),
		States:         states,
		EditableStates: editable,
	}))
	writeJSON(w, http.StatusOK, bundles)
}

// saveBundles rewrites the form's behavior rows wholesale in one transaction.
func (h *BehaviorHandler) saveBundles(r *http.Request, formID uuid.UUID, bundles []behavior.Bundle, audit AuditInfo) error {
	ctx := r.Context()
	tx, err := h.client.Tx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.FormBehavior.Delete().
		Where(formbehavior.HasFormWith(formdefinition.IDEQ(formID))).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, b := range bundles {
		builder := tx.FormBehavior.Create().
			SetFormID(formID).
			SetState(b.State).
			SetAction(formbehavior.Action(b.Action)).
			SetRows(b.Rows).
			SetCreatedBy(audit.Actor).
			SetUpdatedBy(audit.Actor).
			SetSource(formbehavior.Source(audit.Source))
		if audit.CorrelationID != nil {
			builder.SetCorrelationID(*audit.CorrelationID)
		}
		if _, err := builder.Save(ctx); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Render returns the schema enriched for one state, together with the
// derived action and read-only classification.
func (h *BehaviorHandler) Render(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		writeError(w, http.StatusBadRequest, "MISSING_STATE", "state query parameter is required")
		return
	}
	f, err := h.client.FormDefinition.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	if err := validateState(f.States, state); err != nil {
		writeError(w, http.StatusBadRequest, "UNKNOWN_STATE", err.Error())
		return
	}
	bundles, err := loadBundles(r.Context(), h.client, id, f.States)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form.Render(f.Schema, bundles, f.States, state))
}
