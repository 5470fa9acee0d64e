package history

import (
	"context"
	"testing"
	"time"
)

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := s.WriteEntries(context.Background(), []Entry{
		{EventID: "e1", EventType: "form_created", FormID: "f1", OccurredAt: base},
		{EventID: "e2", EventType: "behaviors_updated", FormID: "f1", OccurredAt: base.Add(time.Hour)},
		{EventID: "e3", EventType: "entry_submitted", FormID: "f1", OccurredAt: base.Add(2 * time.Hour)},
		{EventID: "e4", EventType: "form_created", FormID: "f2", OccurredAt: base},
	})
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return s
}

func TestQueryByForm_NewestFirst(t *testing.T) {
	s := seedStore(t)

	entries, _, total, err := s.QueryByForm(context.Background(), "f1", QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(entries) != 3 {
		t.Fatalf("got %d/%d entries, want 3/3", len(entries), total)
	}
	if entries[0].EventID != "e3" || entries[2].EventID != "e1" {
		t.Errorf("wrong order: %s ... %s", entries[0].EventID, entries[2].EventID)
	}
}

func TestQueryByForm_FiltersByType(t *testing.T) {
	s := seedStore(t)

	entries, _, _, err := s.QueryByForm(context.Background(), "f1", QueryOptions{
		EventTypes: []string{"behaviors_updated"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].EventID != "e2" {
		t.Errorf("entries = %+v, want just e2", entries)
	}
}

func TestQueryByForm_SinceWindow(t *testing.T) {
	s := seedStore(t)
	since := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)

	entries, _, _, err := s.QueryByForm(context.Background(), "f1", QueryOptions{Since: &since})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestQueryByForm_UnknownFormIsEmpty(t *testing.T) {
	s := seedStore(t)
	entries, _, total, err := s.QueryByForm(context.Background(), "nope", QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 || total != 0 {
		t.Errorf("got %d/%d, want empty", len(entries), total)
	}
}
