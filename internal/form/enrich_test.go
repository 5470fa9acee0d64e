package form

import (
	"testing"

	"github.com/formstate/formstate/internal/behavior"
)

func containsKey(n *Node, key string) bool {
	if n == nil {
		return false
	}
	if n.Key == key {
		return true
	}
	for _, c := range n.Components {
		if containsKey(c, key) {
			return true
		}
	}
	return false
}

func findKey(n *Node, key string) *Node {
	if n == nil {
		return nil
	}
	if n.Key == key {
		return n
	}
	for _, c := range n.Components {
		if found := findKey(c, key); found != nil {
			return found
		}
	}
	return nil
}

func TestEnrichForState_DeletesHiddenNodes(t *testing.T) {
	// "x" sits three containers deep; the hidden rule must still remove it.
	root := mustNode(t, `{"components": [
		{"type": "panel", "components": [
			{"type": "columns", "components": [
				{"type": "group", "components": [
					{"key": "x", "type": "textfield"},
					{"key": "y", "type": "textfield"}
				]}
			]}
		]}
	]}`)

	out := EnrichForState(root, behavior.Bundle{
		State: "approve",
		Rows: []behavior.Row{
			{FieldName: "x", ActionContext: behavior.ActionView, Visible: false},
		},
	})

	if containsKey(out, "x") {
		t.Error("hidden field x still present in enriched schema")
	}
	if !containsKey(out, "y") {
		t.Error("unruled sibling y was dropped")
	}
}

func TestEnrichForState_HiddenContainerDropsChildren(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "section", "type": "panel", "components": [
			{"key": "inner", "type": "textfield"}
		]}
	]}`)

	out := EnrichForState(root, behavior.Bundle{
		Rows: []behavior.Row{
			{FieldName: "section", ActionContext: behavior.ActionView, Visible: false},
		},
	})

	if containsKey(out, "section") || containsKey(out, "inner") {
		t.Error("children of a hidden container must be dropped with it")
	}
}

func TestEnrichForState_EditableSetsRequired(t *testing.T) {
	root := mustNode(t, `{"components": [{"key": "y", "type": "textfield", "disabled": true}]}`)

	out := EnrichForState(root, behavior.Bundle{
		Rows: []behavior.Row{
			{FieldName: "y", ActionContext: behavior.ActionUpdate, Visible: true, Required: true},
		},
	})

	n := findKey(out, "y")
	if n == nil {
		t.Fatal("y missing from output")
	}
	if n.Disabled {
		t.Error("editable field left disabled")
	}
	if n.Validate == nil || !n.Validate.Required {
		t.Error("editable field did not get validate.required=true")
	}
}

func TestEnrichForState_ReadOnlyDisablesAndUnrequires(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "y", "type": "textfield", "validate": {"required": true}}
	]}`)

	out := EnrichForState(root, behavior.Bundle{
		Rows: []behavior.Row{
			// required=true on a view row has no effect by definition.
			{FieldName: "y", ActionContext: behavior.ActionView, Visible: true, Required: true},
		},
	})

	n := findKey(out, "y")
	if n == nil {
		t.Fatal("y missing from output")
	}
	if !n.Disabled {
		t.Error("readonly field not disabled")
	}
	if n.Validate.Required {
		t.Error("readonly field kept validate.required=true")
	}
}

func TestEnrichForState_ReadOnlyWithoutValidateAddsNone(t *testing.T) {
	root := mustNode(t, `{"components": [{"key": "y", "type": "textfield"}]}`)

	out := EnrichForState(root, behavior.Bundle{
		Rows: []behavior.Row{
			{FieldName: "y", ActionContext: behavior.ActionView, Visible: true},
		},
	})

	if n := findKey(out, "y"); n.Validate != nil {
		t.Error("readonly rule should not invent a validate block")
	}
}

func TestEnrichForState_UnruledFieldPassesThrough(t *testing.T) {
	root := mustNode(t, `{"components": [
		{"key": "free", "type": "textfield", "validate": {"required": true}}
	]}`)

	out := EnrichForState(root, behavior.Bundle{State: "entry"})

	n := findKey(out, "free")
	if n == nil {
		t.Fatal("unruled field was dropped — no rule means no opinion, not hidden")
	}
	if n.Disabled || !n.Validate.Required {
		t.Error("unruled field was modified")
	}
}

func TestEnrichForState_DoesNotAliasInput(t *testing.T) {
	root := mustNode(t, `{"components": [{"key": "y", "type": "textfield"}]}`)

	out := EnrichForState(root, behavior.Bundle{
		Rows: []behavior.Row{
			{FieldName: "y", ActionContext: behavior.ActionUpdate, Visible: true, Required: true},
		},
	})

	out.Components[0].Key = "mutated"
	out.Components = nil

	if root.Components[0].Key != "y" {
		t.Error("enriched schema aliases the input schema")
	}
	if root.Components[0].Validate != nil {
		t.Error("enrichment mutated the input schema")
	}
}
