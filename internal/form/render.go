package form

import (
	"github.com/formstate/formstate/internal/behavior"
)

// Rendered is what the viewer needs to present a form in one workflow state:
// the enriched schema plus the derived action and read-only classification.
type Rendered struct {
	State    string          `json:"state"`
	Action   behavior.Action `json:"action"`
	ReadOnly bool            `json:"read_only"`
	Schema   *Node           `json:"schema"`
}

// Render resolves the bundle for the requested state and applies it to the
// schema. states is the form's ordered state list; its first element is the
// entry state, which stays editable even with no behaviors defined yet.
func Render(root *Node, bundles []behavior.Bundle, states []string, state string) Rendered {
	entry := behavior.DefaultEntryState
	if len(states) > 0 {
		entry = states[0]
	}
	b := behavior.ResolveAction(bundles, state)
	m := behavior.MatrixFromBundles(bundles)
	return Rendered{
		State:    state,
		Action:   b.Action,
		ReadOnly: behavior.ResolveReadOnly(bundles, m, state, entry),
		Schema:   EnrichForState(root, b),
	}
}
