package form

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustNode(t *testing.T, src string) *Node {
	t.Helper()
	var n Node
	if err := json.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("decoding schema: %v", err)
	}
	return &n
}

func TestExtractFields_SkipsDisplayNodes(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"type": "text", "text": "hi"},
		{"type": "group", "components": [{"key": "a", "type": "textfield"}]}
	]}`)

	got := ExtractFields(root)
	want := []Field{{Key: "a", Label: "a", Type: "textfield"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractFields = %+v, want %+v", got, want)
	}
}

func TestExtractFields_PreOrder(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "outer", "type": "panel", "label": "Outer", "components": [
			{"key": "inner", "type": "number"}
		]},
		{"key": "after", "type": "checkbox"}
	]}`)

	got := ExtractFields(root)
	keys := make([]string, len(got))
	for i, f := range got {
		keys[i] = f.Key
	}
	want := []string{"outer", "inner", "after"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("field order = %v, want %v", keys, want)
	}
}

func TestExtractFields_LabelFallback(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "a", "type": "textfield", "label": "Amount"},
		{"key": "b", "type": "textfield", "text": "Notes"},
		{"key": "c", "type": "textfield"}
	]}`)

	got := ExtractFields(root)
	wantLabels := []string{"Amount", "Notes", "c"}
	for i, f := range got {
		if f.Label != wantLabels[i] {
			t.Errorf("field %s label = %q, want %q", f.Key, f.Label, wantLabels[i])
		}
	}
}

func TestExtractFields_KeyedButtonDoesNotContribute(t *testing.T) {
	// Buttons are action primitives even when the designer assigned a key,
	// but fields nested under their container still surface.
	root := mustNode(t, `{"components": [
		{"key": "submit", "type": "button", "components": [
			{"key": "nested", "type": "textfield"}
		]}
	]}`)

	got := ExtractFields(root)
	if len(got) != 1 || got[0].Key != "nested" {
		t.Errorf("ExtractFields = %+v, want just nested", got)
	}
}

func TestExtractFields_DuplicateKeysSurface(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "dup", "type": "textfield"},
		{"key": "dup", "type": "number"}
	]}`)

	got := ExtractFields(root)
	if len(got) != 2 {
		t.Errorf("got %d fields, want 2 — duplicates are the caller's problem", len(got))
	}
}

func TestExtractFields_NilRoot(t *testing.T) {
	if got := ExtractFields(nil); len(got) != 0 {
		t.Errorf("ExtractFields(nil) = %+v, want none", got)
	}
}
