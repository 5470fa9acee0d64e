package behavior

import (
	"reflect"
	"testing"
)

func TestBundlesFromMatrix_RowDerivation(t *testing.T) {
	m := Matrix{
		"a": {"entry": {Mode: ModeEditable, Required: true}},
		"b": {"entry": {Mode: ModeReadOnly}},
		"c": {"entry": {Mode: ModeHidden, Required: true}}, // required has no effect
	}

	bundles := BundlesFromMatrix(m, []string{"entry"})
	if len(bundles) != 1 {
		t.Fatalf("got %d bundles, want 1", len(bundles))
	}
	b := bundles[0]
	if b.State != "entry" || b.Action != ActionUpdate {
		t.Errorf("bundle = {%s %s}, want {entry update}", b.State, b.Action)
	}

	want := []Row{
		{FieldName: "a", ActionContext: ActionUpdate, Visible: true, Required: true},
		{FieldName: "b", ActionContext: ActionView, Visible: true, Required: false},
		{FieldName: "c", ActionContext: ActionView, Visible: false, Required: false},
	}
	if !reflect.DeepEqual(b.Rows, want) {
		t.Errorf("rows = %+v, want %+v", b.Rows, want)
	}
}

func TestBundlesFromMatrix_SkipsMissingCells(t *testing.T) {
	// "a" has no cell for "review" — no hidden row is synthesized for it.
	m := Matrix{"a": {"entry": {Mode: ModeEditable}}}

	bundles := BundlesFromMatrix(m, []string{"entry", "review"})
	if len(bundles) != 2 {
		t.Fatalf("got %d bundles, want 2", len(bundles))
	}
	if len(bundles[1].Rows) != 0 {
		t.Errorf("review rows = %+v, want none", bundles[1].Rows)
	}
	if bundles[1].Action != ActionView {
		t.Errorf("review action = %s, want view", bundles[1].Action)
	}
}

func TestBundlesFromMatrix_ViewWhenNothingEditable(t *testing.T) {
	m := Matrix{
		"a": {"approve": {Mode: ModeReadOnly}},
		"b": {"approve": {Mode: ModeHidden}},
	}
	bundles := BundlesFromMatrix(m, []string{"approve"})
	if bundles[0].Action != ActionView {
		t.Errorf("action = %s, want view", bundles[0].Action)
	}
}

func TestMatrixFromBundles_InverseRule(t *testing.T) {
	bundles := []Bundle{{
		State:  "review",
		Action: ActionUpdate,
		Rows: []Row{
			{FieldName: "a", ActionContext: ActionUpdate, Visible: true, Required: true},
			{FieldName: "b", ActionContext: ActionCreate, Visible: true, Required: false},
			{FieldName: "c", ActionContext: ActionView, Visible: true, Required: true},
			{FieldName: "d", ActionContext: ActionView, Visible: false, Required: true},
		},
	}}

	m := MatrixFromBundles(bundles)

	if c := m["a"]["review"]; c.Mode != ModeEditable || !c.Required {
		t.Errorf("a = %+v, want editable/required", c)
	}
	if c := m["b"]["review"]; c.Mode != ModeEditable || c.Required {
		t.Errorf("b = %+v, want editable/not required", c)
	}
	// Required never sticks to a readonly or hidden cell.
	if c := m["c"]["review"]; c.Mode != ModeReadOnly || c.Required {
		t.Errorf("c = %+v, want readonly/not required", c)
	}
	if c := m["d"]["review"]; c.Mode != ModeHidden || c.Required {
		t.Errorf("d = %+v, want hidden/not required", c)
	}
}

func TestRoundTrip_ExactForRepresentableCells(t *testing.T) {
	m := Matrix{
		"a": {
			"entry":  {Mode: ModeEditable, Required: true},
			"review": {Mode: ModeReadOnly},
		},
		"b": {
			"entry":  {Mode: ModeHidden},
			"review": {Mode: ModeEditable, Required: false},
		},
	}
	states := []string{"entry", "review"}

	got := MatrixFromBundles(BundlesFromMatrix(m, states))
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip diverged:\ngot:  %+v\nwant: %+v", got, m)
	}
}

// A readonly cell with required=true is not representable in bundle form:
// required is defined to have operational meaning only on editable fields,
// so the flag is dropped across the round trip. This is the declared lossy
// edge, not a defect.
func TestRoundTrip_ReadOnlyRequiredIsDropped(t *testing.T) {
	m := Matrix{"f": {"s": {Mode: ModeReadOnly, Required: true}}}

	got := MatrixFromBundles(BundlesFromMatrix(m, []string{"s"}))

	want := Cell{Mode: ModeReadOnly, Required: false}
	if got["f"]["s"] != want {
		t.Errorf("got %+v, want %+v", got["f"]["s"], want)
	}
}

func TestMatrixFromBundles_EmptyRowsInventNoFields(t *testing.T) {
	m := MatrixFromBundles([]Bundle{{State: "entry", Action: ActionView}})
	if len(m) != 0 {
		t.Errorf("matrix = %+v, want empty", m)
	}
}
