package editing

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// State is the lifecycle state of an editing session.
//
// State transitions:
//
//	Idle ──> Editing ──┬──> Committing ──┬──> Idle
//	            ▲      │                 │
//	            │      │                 └──> Editing (remote failure)
//	            │      └──> Cancelled ──> Idle
//	            └── (declined confirmation keeps Editing)
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota

	// Idle means no field group is being edited.
	Idle

	// Editing means a field group is shown as a form and collects a draft.
	Editing

	// Committing means the draft was confirmed and is being persisted.
	Committing

	// Cancelled means the draft was discarded; the session returns to Idle.
	Cancelled
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:    "Unknown",
		Idle:       "Idle",
		Editing:    "Editing",
		Committing: "Committing",
		Cancelled:  "Cancelled",
	}
}

// String returns the human-readable name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Begin transitions Idle to Editing.
func (s State) Begin() (State, error) {
	if s != Idle {
		return 0, invalidTransition(s, "begin")
	}
	return Editing, nil
}

// Cancel transitions Editing to Cancelled.
func (s State) Cancel() (State, error) {
	if s != Editing {
		return 0, invalidTransition(s, "cancel")
	}
	return Cancelled, nil
}

// RequestCommit transitions Editing to Committing.
func (s State) RequestCommit() (State, error) {
	if s != Editing {
		return 0, invalidTransition(s, "commit")
	}
	return Committing, nil
}

// Succeed transitions Committing to Idle.
func (s State) Succeed() (State, error) {
	if s != Committing {
		return 0, invalidTransition(s, "finish a commit")
	}
	return Idle, nil
}

// Fail transitions Committing back to Editing.
func (s State) Fail() (State, error) {
	if s != Committing {
		return 0, invalidTransition(s, "fail a commit")
	}
	return Editing, nil
}

// Finish transitions Cancelled to Idle.
func (s State) Finish() (State, error) {
	if s != Cancelled {
		return 0, invalidTransition(s, "finish a cancel")
	}
	return Idle, nil
}

func invalidTransition(s State, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"editing state is invalid",
		fmt.Errorf("cannot %s from %s", action, s),
	)
}
