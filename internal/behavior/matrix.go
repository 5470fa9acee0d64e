// Package behavior implements the state-driven behavior engine: the
// field×state rule matrix, its row-oriented bundle projection, and the pure
// resolvers that derive per-state actions and read-only flags. Everything in
// this package is side-effect free — inputs are never mutated and outputs
// never alias them.
package behavior

// Mode is the three-way visibility/editability classification of a field
// within one workflow state.
type Mode string

const (
	ModeHidden   Mode = "hidden"
	ModeReadOnly Mode = "readonly"
	ModeEditable Mode = "editable"
)

// Cell is one rule: how a single field behaves in a single state.
// Required carries operational meaning only when Mode is ModeEditable;
// consumers coerce it to false under the other modes on read.
type Cell struct {
	Mode     Mode `json:"mode"`
	Required bool `json:"required"`
}

// DefaultCell is the rule assumed for any (field, state) pair the matrix
// does not mention: hidden and not required.
var DefaultCell = Cell{Mode: ModeHidden, Required: false}

// Matrix maps field key → state → Cell. It is usually sparse; lookups for
// missing pairs must fall back to DefaultCell. The matrix is the canonical
// in-memory rule model — the bundle list is a projection of it, never an
// independently edited copy.
type Matrix map[string]map[string]Cell

// Lookup returns the cell for (field, state), falling back to DefaultCell
// when either level is absent.
func (m Matrix) Lookup(field, state string) Cell {
	if states, ok := m[field]; ok {
		if c, ok := states[state]; ok {
			return c
		}
	}
	return DefaultCell
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for field, states := range m {
		cp := make(map[string]Cell, len(states))
		for state, c := range states {
			cp[state] = c
		}
		out[field] = cp
	}
	return out
}

// EnsureAllCells completes a matrix against the currently known fields and
// states: every missing (field, state) pair from the supplied sequences is
// filled with DefaultCell. Existing cells are never overwritten, and cells
// for fields or states outside the sequences are kept — a field that
// temporarily vanished from the schema keeps its rules until it is edited
// away. Completion is applied before rendering or diffing, not stored, since
// the known field and state sets can grow after the matrix was last saved.
//
// The input is not mutated; the result is freshly allocated.
func EnsureAllCells(m Matrix, fieldKeys, states []string) Matrix {
	out := m.Clone()
	for _, field := range fieldKeys {
		cells, ok := out[field]
		if !ok {
			cells = make(map[string]Cell, len(states))
			out[field] = cells
		}
		for _, state := range states {
			if _, ok := cells[state]; !ok {
				cells[state] = DefaultCell
			}
		}
	}
	return out
}

// Overlay merges source onto target with source authoritative at cell
// granularity: every cell source defines replaces the corresponding target
// cell, while cells present only in target survive. Used when reconciling a
// locally edited matrix against one freshly loaded from storage.
//
// Neither argument is mutated.
func Overlay(target, source Matrix) Matrix {
	out := target.Clone()
	for field, states := range source {
		cells, ok := out[field]
		if !ok {
			cells = make(map[string]Cell, len(states))
			out[field] = cells
		}
		for state, c := range states {
			cells[state] = c
		}
	}
	return out
}
