package form

import (
	"github.com/formstate/formstate/internal/behavior"
)

// EnrichForState applies one state's resolved rules to a schema and returns
// the tree the viewer should actually render for that state:
//
//   - fields ruled hidden are removed from their parent outright, subtree
//     included — not merely flagged invisible
//   - fields ruled readonly are disabled, and a declared required flag is
//     forced off
//   - fields ruled editable are enabled and carry the rule's required flag
//   - fields the bundle has no opinion on, and non-keyed containers, pass
//     through untouched apart from recursing into their children
//
// The result is a deep copy; no part of it aliases the input schema.
func EnrichForState(root *Node, b behavior.Bundle) *Node {
	rules := make(map[string]behavior.Cell, len(b.Rows))
	for _, row := range b.Rows {
		rules[row.FieldName] = behavior.CellFromRow(row)
	}
	return enrich(root.Clone(), rules)
}

func enrich(n *Node, rules map[string]behavior.Cell) *Node {
	if n == nil {
		return nil
	}
	if n.Key != "" {
		if c, ok := rules[n.Key]; ok {
			switch c.Mode {
			case behavior.ModeHidden:
				return nil
			case behavior.ModeReadOnly:
				n.Disabled = true
				if n.Validate != nil {
					n.Validate.Required = false
				}
			case behavior.ModeEditable:
				n.Disabled = false
				if n.Validate == nil {
					n.Validate = &Validate{}
				}
				n.Validate.Required = c.Required
			}
		}
	}
	if len(n.Components) > 0 {
		kept := n.Components[:0]
		for _, c := range n.Components {
			if out := enrich(c, rules); out != nil {
				kept = append(kept, out)
			}
		}
		n.Components = kept
	}
	return n
}
