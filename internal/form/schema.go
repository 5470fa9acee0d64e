// Package form models the form schema tree produced by the visual designer
// and provides the pure transforms over it: field extraction and per-state
// enrichment. The package never talks to storage or the network — callers
// hand it decoded schema snapshots and receive freshly allocated results.
package form

import (
	"encoding/json"
)

// Node is one node of the schema tree. A node with a non-empty Key is an
// addressable field; nodes without a key are layout containers. The designer
// writes arbitrary extra properties (placeholder, defaultValue, grid hints,
// ...) which the core must carry through untouched — they are kept verbatim
// in attrs and merged back on encode.
type Node struct {
	Key        string
	Type       string
	Label      string
	Text       string
	Disabled   bool
	Validate   *Validate
	Components []*Node

	attrs map[string]json.RawMessage
}

// Validate holds the validation block of a node. Only Required is ever
// interpreted or mutated here; any other validator keys (pattern, min, ...)
// pass through unmodified.
type Validate struct {
	Required bool

	rest map[string]json.RawMessage
}

// Field is one addressable field discovered in a schema. Fields are derived
// on every extraction, never stored.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
}

// UnmarshalJSON decodes a node, splitting recognized properties into typed
// fields and stashing everything else for lossless re-encoding.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["key"]; ok {
		if err := json.Unmarshal(v, &n.Key); err != nil {
			return err
		}
		delete(raw, "key")
	}
	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &n.Type); err != nil {
			return err
		}
		delete(raw, "type")
	}
	if v, ok := raw["label"]; ok {
		if err := json.Unmarshal(v, &n.Label); err != nil {
			return err
		}
		delete(raw, "label")
	}
	if v, ok := raw["text"]; ok {
		if err := json.Unmarshal(v, &n.Text); err != nil {
			return err
		}
		delete(raw, "text")
	}
	if v, ok := raw["disabled"]; ok {
		if err := json.Unmarshal(v, &n.Disabled); err != nil {
			return err
		}
		delete(raw, "disabled")
	}
	if v, ok := raw["validate"]; ok {
		n.Validate = &Validate{}
		if err := json.Unmarshal(v, n.Validate); err != nil {
			return err
		}
		delete(raw, "validate")
	}
	if v, ok := raw["components"]; ok {
		if err := json.Unmarshal(v, &n.Components); err != nil {
			return err
		}
		delete(raw, "components")
	}
	if len(raw) > 0 {
		n.attrs = raw
	}
	return nil
}

// MarshalJSON re-encodes the node, merging preserved unknown properties with
// the typed fields. Zero-valued string fields and a false disabled flag are
// omitted, matching how the designer writes schemas.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(n.attrs)+7)
	for k, v := range n.attrs {
		out[k] = v
	}
	if n.Key != "" {
		out["key"] = mustRaw(n.Key)
	}
	if n.Type != "" {
		out["type"] = mustRaw(n.Type)
	}
	if n.Label != "" {
		out["label"] = mustRaw(n.Label)
	}
	if n.Text != "" {
		out["text"] = mustRaw(n.Text)
	}
	if n.Disabled {
		out["disabled"] = mustRaw(true)
	}
	if n.Validate != nil {
		v, err := json.Marshal(n.Validate)
		if err != nil {
			return nil, err
		}
		out["validate"] = v
	}
	if n.Components != nil {
		v, err := json.Marshal(n.Components)
		if err != nil {
			return nil, err
		}
		out["components"] = v
	}
	return json.Marshal(out)
}

func (v *Validate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if r, ok := raw["required"]; ok {
		if err := json.Unmarshal(r, &v.Required); err != nil {
			return err
		}
		delete(raw, "required")
	}
	if len(raw) > 0 {
		v.rest = raw
	}
	return nil
}

func (v *Validate) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(v.rest)+1)
	for k, val := range v.rest {
		out[k] = val
	}
	out["required"] = mustRaw(v.Required)
	return json.Marshal(out)
}

// Clone returns a structural deep copy of the node. No part of the result
// aliases the receiver — callers may mutate either side freely. An explicit
// copy is used instead of a JSON round trip so preserved raw attributes
// survive byte-for-byte.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Key:      n.Key,
		Type:     n.Type,
		Label:    n.Label,
		Text:     n.Text,
		Disabled: n.Disabled,
	}
	if n.Validate != nil {
		out.Validate = n.Validate.clone()
	}
	if n.Components != nil {
		out.Components = make([]*Node, len(n.Components))
		for i, c := range n.Components {
			out.Components[i] = c.Clone()
		}
	}
	if n.attrs != nil {
		out.attrs = cloneRawMap(n.attrs)
	}
	return out
}

func (v *Validate) clone() *Validate {
	out := &Validate{Required: v.Required}
	if v.rest != nil {
		out.rest = cloneRawMap(v.rest)
	}
	return out
}

func cloneRawMap(m map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		cp := make(json.RawMessage, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

func mustRaw(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
