package config

import "fmt"

// ExitPolicy decides how the window-close and escape-key signals combine
// into the frame loop's keep-running condition.
type ExitPolicy string

const (
	// ExitPolicyAnd keeps running while the window is open and escape is
	// not held, so either signal stops the loop.
	ExitPolicyAnd ExitPolicy = "and"
	// ExitPolicyOr keeps running while the window is open or escape is
	// not held, so the loop stops only when both signals are present.
	ExitPolicyOr ExitPolicy = "or"
)

// KeepRunning evaluates the loop condition for one frame
func (p ExitPolicy) KeepRunning(closeRequested, escapeHeld bool) bool {
	if p == ExitPolicyOr {
		return !closeRequested || !escapeHeld
	}
	return !closeRequested && !escapeHeld
}

// Validate rejects unknown policies
func (p ExitPolicy) Validate() error {
	switch p {
	case ExitPolicyAnd, ExitPolicyOr:
		return nil
	}
	return fmt.Errorf("unknown exit policy %q (want %q or %q)", string(p), ExitPolicyAnd, ExitPolicyOr)
}
