package behavior

import "testing"

func TestResolveAction_KnownState(t *testing.T) {
	bundles := []Bundle{
		{State: "entry", Action: ActionUpdate, Rows: []Row{{FieldName: "a", ActionContext: ActionUpdate, Visible: true}}},
		{State: "approve", Action: ActionView},
	}

	b := ResolveAction(bundles, "entry")
	if b.Action != ActionUpdate || len(b.Rows) != 1 {
		t.Errorf("ResolveAction(entry) = %+v", b)
	}
}

func TestResolveAction_UnknownStateDegradesToView(t *testing.T) {
	b := ResolveAction(nil, "archived")
	if b.State != "archived" || b.Action != ActionView || len(b.Rows) != 0 {
		t.Errorf("ResolveAction(archived) = %+v, want empty view bundle", b)
	}
}

func TestResolveReadOnly_EntryStateBootstrap(t *testing.T) {
	// A brand-new form with no behaviors defined must accept initial entry.
	if ResolveReadOnly(nil, nil, "entry", "entry") {
		t.Error("entry state with empty matrix should be editable")
	}
	if !ResolveReadOnly(nil, nil, "approve", "entry") {
		t.Error("non-entry state with empty matrix should be read-only")
	}
}

func TestResolveReadOnly_ViewBundleWins(t *testing.T) {
	bundles := []Bundle{{State: "approve", Action: ActionView}}
	if !ResolveReadOnly(bundles, Matrix{}, "approve", "entry") {
		t.Error("state with a view bundle should be read-only")
	}
}

func TestResolveReadOnly_EditableCellUnlocksState(t *testing.T) {
	m := Matrix{"a": {"review": {Mode: ModeEditable}}}
	bundles := BundlesFromMatrix(m, []string{"review"})
	if ResolveReadOnly(bundles, m, "review", "entry") {
		t.Error("state with an editable cell should not be read-only")
	}
}

func TestResolveReadOnly_NoEditableCellLocksNonEntryState(t *testing.T) {
	m := Matrix{"a": {"review": {Mode: ModeReadOnly}, "entry": {Mode: ModeEditable}}}
	bundles := BundlesFromMatrix(m, []string{"entry", "review"})
	if !ResolveReadOnly(bundles, m, "review", "entry") {
		t.Error("non-entry state with only readonly cells should be read-only")
	}
	if ResolveReadOnly(bundles, m, "entry", "entry") {
		t.Error("entry state with an editable cell should be editable")
	}
}
