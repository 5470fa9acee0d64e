// Package event provides domain event recording for the form service.
// Events are written to the history store, then published to the in-process
// event bus for downstream consumers such as the live preview hub.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainEvent carries the canonical shape of every domain event.
type DomainEvent struct {
	ID         string
	EventType  string
	OccurredAt time.Time
	FormID     string
	Summary    string
	Payload    json.RawMessage
}

func newID() string { return uuid.New().String() }

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ── Form lifecycle events ────────────────────────────────────────────────────

// FormCreatedPayload carries event-specific data for FormCreated.
type FormCreatedPayload struct {
	FormID     string   `json:"form_id"`
	Name       string   `json:"name"`
	States     []string `json:"states"`
	FieldCount int      `json:"field_count"`
}

func NewFormCreated(p FormCreatedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "form_created",
		OccurredAt: time.Now(),
		FormID:     p.FormID,
		Summary:    fmt.Sprintf("Form %q created with %d fields across %d states", p.Name, p.FieldCount, len(p.States)),
		Payload:    mustJSON(p),
	}
}

// FormSchemaUpdatedPayload carries event-specific data for FormSchemaUpdated.
type FormSchemaUpdatedPayload struct {
	FormID     string `json:"form_id"`
	Name       string `json:"name"`
	FieldCount int    `json:"field_count"`
}

func NewFormSchemaUpdated(p FormSchemaUpdatedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "form_schema_updated",
		OccurredAt: time.Now(),
		FormID:     p.FormID,
		Summary:    fmt.Sprintf("Schema of form %s updated (%d fields)", short(p.FormID), p.FieldCount),
		Payload:    mustJSON(p),
	}
}

// ── Behavior events ──────────────────────────────────────────────────────────

// BehaviorsUpdatedPayload carries event-specific data for BehaviorsUpdated.
type BehaviorsUpdatedPayload struct {
	FormID         string   `json:"form_id"`
	States         []string `json:"states"`
	EditableStates int      `json:"editable_states"`
}

func NewBehaviorsUpdated(p BehaviorsUpdatedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "behaviors_updated",
		OccurredAt: time.Now(),
		FormID:     p.FormID,
		Summary:    fmt.Sprintf("Behaviors of form %s saved: %d states, %d editable", short(p.FormID), len(p.States), p.EditableStates),
		Payload:    mustJSON(p),
	}
}

// ── Entry events ─────────────────────────────────────────────────────────────

// EntrySubmittedPayload carries event-specific data for EntrySubmitted.
type EntrySubmittedPayload struct {
	FormID     string `json:"form_id"`
	EntryID    string `json:"entry_id"`
	State      string `json:"state"`
	FieldCount int    `json:"field_count"`
}

func NewEntrySubmitted(p EntrySubmittedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "entry_submitted",
		OccurredAt: time.Now(),
		FormID:     p.FormID,
		Summary:    fmt.Sprintf("Entry %s submitted in state %q", short(p.EntryID), p.State),
		Payload:    mustJSON(p),
	}
}
