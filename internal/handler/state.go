package handler

import "fmt"

// validateState checks that state is one of the form's configured workflow
// states. Behavior documents may legitimately carry stale states, but
// submissions and renders always target a live one.
func validateState(states []string, state string) error {
	for _, s := range states {
		if s == state {
			return nil
		}
	}
	return fmt.Errorf("unknown state: %s", state)
}
