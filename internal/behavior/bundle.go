package behavior

import "sort"

// Action classifies what a state lets the operator do with the form as a
// whole: just look at it, or enter/change data.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// Row is the row-oriented wire form of a single field rule within one state.
type Row struct {
	FieldName     string `json:"field_name"`
	ActionContext Action `json:"action_context"`
	Visible       bool   `json:"visible"`
	Required      bool   `json:"required"`
}

// Bundle groups the rows of one state together with the state's aggregate
// action. A bundle list is the persistence projection of a matrix.
type Bundle struct {
	State  string `json:"state"`
	Action Action `json:"action"`
	Rows   []Row  `json:"rows"`
}

// BundlesFromMatrix projects a matrix into one bundle per requested state,
// in the given state order. Fields are emitted in sorted key order so the
// projection is deterministic. Fields with no cell for a state are skipped
// entirely — this direction never synthesizes hidden rows.
//
// The three-way mode is not carried verbatim: hidden maps to visible=false,
// readonly to a visible view row, editable to an update row. Required is
// coerced to false for anything not editable. MatrixFromBundles inverts this
// exactly, except that a readonly cell can never get its required flag back.
func BundlesFromMatrix(m Matrix, states []string) []Bundle {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	bundles := make([]Bundle, 0, len(states))
	for _, state := range states {
		b := Bundle{State: state, Action: ActionView}
		for _, field := range fields {
			c, ok := m[field][state]
			if !ok {
				continue
			}
			editable := c.Mode == ModeEditable
			row := Row{
				FieldName: field,
				Visible:   c.Mode != ModeHidden,
				Required:  c.Required && editable,
			}
			if editable {
				row.ActionContext = ActionUpdate
				b.Action = ActionUpdate
			} else {
				row.ActionContext = ActionView
			}
			b.Rows = append(b.Rows, row)
		}
		bundles = append(bundles, b)
	}
	return bundles
}

// MatrixFromBundles rebuilds a sparse matrix from a bundle list, populating
// only cells some row mentions. Field and state coverage of the input is
// unconstrained — stale states and unknown fields are kept as-is.
func MatrixFromBundles(bundles []Bundle) Matrix {
	m := make(Matrix)
	for _, b := range bundles {
		for _, row := range b.Rows {
			cells, ok := m[row.FieldName]
			if !ok {
				cells = make(map[string]Cell)
				m[row.FieldName] = cells
			}
			cells[b.State] = CellFromRow(row)
		}
	}
	return m
}

// CellFromRow is the canonical inverse of the row derivation: an invisible
// row is hidden, a visible create/update row is editable, and any other
// visible row is readonly. Required sticks only to editable cells.
func CellFromRow(row Row) Cell {
	switch {
	case !row.Visible:
		return Cell{Mode: ModeHidden}
	case row.ActionContext == ActionUpdate || row.ActionContext == ActionCreate:
		return Cell{Mode: ModeEditable, Required: row.Required}
	default:
		return Cell{Mode: ModeReadOnly}
	}
}
