package form

// displayTypes are node kinds that are pure display or action primitives.
// They never contribute a field themselves, but a container wrapping them
// may still hold addressable children, so traversal continues below them.
var displayTypes = map[string]bool{
	"text":   true,
	"button": true,
}

// ExtractFields walks the schema tree in pre-order and returns every
// addressable field in document order. It is a pure function of the tree and
// cheap enough to recompute on every access; fields are never cached or stored.
//
// Duplicate keys are returned as-is: coalescing them is a schema-authoring
// hazard surfaced to the caller, not something to repair silently here.
func ExtractFields(root *Node) []Field {
	var fields []Field
	collectFields(root, &fields)
	return fields
}

func collectFields(n *Node, out *[]Field) {
	if n == nil {
		return
	}
	if n.Key != "" && !displayTypes[n.Type] {
		label := n.Label
		if label == "" {
			label = n.Text
		}
		if label == "" {
			label = n.Key
		}
		*out = append(*out, Field{Key: n.Key, Label: label, Type: n.Type})
	}
	for _, c := range n.Components {
		collectFields(c, out)
	}
}
