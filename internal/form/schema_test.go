package form

import (
	"encoding/json"
	"testing"
)

func TestNodeJSON_PreservesUnknownProperties(t *testing.T) {
	src := `{"key": "amount", "type": "number", "placeholder": "0.00",
		"grid": {"cols": 6}, "validate": {"required": true, "min": 1}}`

	n := mustNode(t, src)
	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("re-decoding output: %v", err)
	}
	if got["placeholder"] != "0.00" {
		t.Errorf("placeholder lost: %v", got["placeholder"])
	}
	if grid, ok := got["grid"].(map[string]any); !ok || grid["cols"] != float64(6) {
		t.Errorf("grid lost: %v", got["grid"])
	}
	validate, ok := got["validate"].(map[string]any)
	if !ok {
		t.Fatalf("validate lost: %v", got["validate"])
	}
	if validate["required"] != true || validate["min"] != float64(1) {
		t.Errorf("validate = %v, want required=true min=1", validate)
	}
}

func TestNodeJSON_OmitsZeroValues(t *testing.T) {
	n := mustNode(t, `{"key": "a", "type": "textfield"}`)
	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	for _, absent := range []string{"label", "text", "disabled", "validate", "components"} {
		if _, ok := got[absent]; ok {
			t.Errorf("%q should be omitted when unset", absent)
		}
	}
}

func TestClone_NoAliasing(t *testing.T) {
	orig := mustNode(t, `{"components": [
		{"key": "a", "type": "textfield", "validate": {"required": true}, "hint": "x"}
	]}`)

	cp := orig.Clone()
	cp.Components[0].Key = "changed"
	cp.Components[0].Validate.Required = false
	cp.Components[0].attrs["hint"] = json.RawMessage(`"y"`)
	cp.Components = nil

	child := orig.Components[0]
	if child.Key != "a" {
		t.Error("clone shares node structs with the original")
	}
	if !child.Validate.Required {
		t.Error("clone shares validate structs with the original")
	}
	if string(child.attrs["hint"]) != `"x"` {
		t.Error("clone shares raw attributes with the original")
	}
}

func TestClone_Nil(t *testing.T) {
	var n *Node
	if n.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
