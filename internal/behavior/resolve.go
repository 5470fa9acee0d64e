package behavior

// DefaultEntryState is the conventional name of the workflow's initial
// data-entry state. Forms that configure their own state list designate the
// first element as the entry state instead.
const DefaultEntryState = "entry"

// ResolveAction returns the bundle for the given state. An unknown state is
// not an error — it degrades to an empty view-only bundle, so a form whose
// workflow moved on since the behaviors were saved simply renders read-only.
func ResolveAction(bundles []Bundle, state string) Bundle {
	for _, b := range bundles {
		if b.State == state {
			return b
		}
	}
	return Bundle{State: state, Action: ActionView}
}

// ResolveReadOnly reports whether the whole form should render read-only in
// the given state. That is the case when a bundle for the state exists and
// classifies it as view-only, or when the matrix holds no editable cell for
// the state. The entry state is exempt from the matrix check: a brand-new
// form with no behaviors defined yet must still accept initial data entry.
func ResolveReadOnly(bundles []Bundle, m Matrix, state, entryState string) bool {
	for _, b := range bundles {
		if b.State == state {
			if b.Action == ActionView {
				return true
			}
			break
		}
	}
	if state == entryState {
		return false
	}
	for _, cells := range m {
		if c, ok := cells[state]; ok && c.Mode == ModeEditable {
			return false
		}
	}
	return true
}
