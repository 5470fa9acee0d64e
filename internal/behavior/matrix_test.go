package behavior

import (
	"reflect"
	"testing"
)

func TestLookup_MissingPairFallsBackToDefault(t *testing.T) {
	m := Matrix{"a": {"entry": {Mode: ModeEditable, Required: true}}}

	if got := m.Lookup("a", "entry"); got.Mode != ModeEditable || !got.Required {
		t.Errorf("Lookup(a, entry) = %+v, want editable/required", got)
	}
	if got := m.Lookup("a", "approve"); got != DefaultCell {
		t.Errorf("Lookup(a, approve) = %+v, want default cell", got)
	}
	if got := m.Lookup("missing", "entry"); got != DefaultCell {
		t.Errorf("Lookup(missing, entry) = %+v, want default cell", got)
	}
}

func TestEnsureAllCells_FillsMissingPairs(t *testing.T) {
	m := Matrix{"a": {"entry": {Mode: ModeEditable, Required: true}}}

	got := EnsureAllCells(m, []string{"a", "b"}, []string{"entry", "approve"})

	want := Matrix{
		"a": {
			"entry":   {Mode: ModeEditable, Required: true},
			"approve": DefaultCell,
		},
		"b": {
			"entry":   DefaultCell,
			"approve": DefaultCell,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnsureAllCells = %+v, want %+v", got, want)
	}
}

func TestEnsureAllCells_NeverOverwrites(t *testing.T) {
	m := Matrix{"a": {"entry": {Mode: ModeReadOnly}}}
	got := EnsureAllCells(m, []string{"a"}, []string{"entry"})
	if got["a"]["entry"].Mode != ModeReadOnly {
		t.Errorf("existing cell was overwritten: %+v", got["a"]["entry"])
	}
}

func TestEnsureAllCells_KeepsOrphanCells(t *testing.T) {
	// Field "gone" vanished from the schema; its cells must survive.
	m := Matrix{"gone": {"entry": {Mode: ModeEditable}}}
	got := EnsureAllCells(m, []string{"a"}, []string{"entry"})
	if _, ok := got["gone"]; !ok {
		t.Error("orphan field was dropped during completion")
	}
}

func TestEnsureAllCells_Idempotent(t *testing.T) {
	m := Matrix{"a": {"entry": {Mode: ModeEditable, Required: true}}}
	fields := []string{"a", "b"}
	states := []string{"entry", "review", "approve"}

	once := EnsureAllCells(m, fields, states)
	twice := EnsureAllCells(once, fields, states)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("completion is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestEnsureAllCells_DoesNotMutateInput(t *testing.T) {
	m := Matrix{"a": {"entry": {Mode: ModeEditable}}}
	_ = EnsureAllCells(m, []string{"a", "b"}, []string{"entry", "approve"})

	if len(m) != 1 || len(m["a"]) != 1 {
		t.Errorf("input matrix was mutated: %+v", m)
	}
}

func TestOverlay_SourceWinsAtCellGranularity(t *testing.T) {
	target := Matrix{
		"a": {
			"entry":  {Mode: ModeEditable, Required: true},
			"review": {Mode: ModeReadOnly},
		},
		"b": {"entry": {Mode: ModeHidden}},
	}
	source := Matrix{
		"a": {"entry": {Mode: ModeHidden}},
		"c": {"entry": {Mode: ModeEditable}},
	}

	got := Overlay(target, source)

	if got["a"]["entry"] != source["a"]["entry"] {
		t.Errorf("source cell did not win: %+v", got["a"]["entry"])
	}
	if got["a"]["review"].Mode != ModeReadOnly {
		t.Error("target-only cell for shared field was lost")
	}
	if got["b"]["entry"].Mode != ModeHidden {
		t.Error("target-only field was lost")
	}
	if got["c"]["entry"].Mode != ModeEditable {
		t.Error("source-only field was not merged")
	}
}

func TestOverlay_DoesNotMutateArguments(t *testing.T) {
	target := Matrix{"a": {"entry": {Mode: ModeReadOnly}}}
	source := Matrix{"a": {"entry": {Mode: ModeEditable}}}

	_ = Overlay(target, source)

	if target["a"]["entry"].Mode != ModeReadOnly {
		t.Error("target was mutated")
	}
	if source["a"]["entry"].Mode != ModeEditable {
		t.Error("source was mutated")
	}
}
