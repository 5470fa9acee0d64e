// Package history keeps a queryable record of what happened to each form:
// schema edits, behavior saves, entry submissions. Entries are fanned out
// from domain events by the event recorder.
package history

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one recorded occurrence scoped to a form.
type Entry struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	FormID     string          `json:"form_id"`
	Summary    string          `json:"summary"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// QueryOptions narrows a history query.
type QueryOptions struct {
	Since      *time.Time
	Until      *time.Time
	EventTypes []string
	Limit      int
	Cursor     string
}

// Store is the interface for reading and writing history entries.
type Store interface {
	// WriteEntries appends one or more entries.
	WriteEntries(ctx context.Context, entries []Entry) error

	// QueryByForm returns entries for one form, newest first.
	QueryByForm(ctx context.Context, formID string, opts QueryOptions) (entries []Entry, nextCursor string, totalCount int, err error)
}
