// Package editing implements the in-place editing state machine for one
// section of the active order.
package editing

import (
	"fmt"
	"slices"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"
)

// Session tracks the edit of one section. The zero value is not usable;
// create sessions with NewSession.
type Session struct {
	section  order.Section
	original []string
	draft    []string
	state    State
}

// NewSession returns an Idle session.
func NewSession() *Session {
	return &Session{state: Idle}
}

// Begin captures the currently displayed values of section and opens the
// draft with the same values.
func (s *Session) Begin(section order.Section, values []string) error {
	if err := section.Validate(); err != nil {
		return err
	}
	if len(values) != order.SectionFieldCount {
		return errs.NewValueIsInvalidErrorWithCause(
			"values",
			fmt.Errorf("%s expects %d values, got %d", section, order.SectionFieldCount, len(values)),
		)
	}

	next, err := s.state.Begin()
	if err != nil {
		return err
	}

	s.state = next
	s.section = section
	s.original = slices.Clone(values)
	s.draft = slices.Clone(values)
	return nil
}

// SetDraft replaces one draft value by its position in the section.
func (s *Session) SetDraft(index int, value string) error {
	if s.state != Editing {
		return invalidTransition(s.state, "edit a field")
	}
	if index < 0 || index >= len(s.draft) {
		return errs.NewValueIsInvalidErrorWithCause(
			"field index",
			fmt.Errorf("%d is outside 0..%d", index, len(s.draft)-1),
		)
	}
	s.draft[index] = value
	return nil
}

// Cancel discards the draft and returns the original values to display.
func (s *Session) Cancel() ([]string, error) {
	cancelled, err := s.state.Cancel()
	if err != nil {
		return nil, err
	}
	idle, err := cancelled.Finish()
	if err != nil {
		return nil, err
	}

	original := s.original
	s.reset(idle)
	return original, nil
}

// RequestCommit moves a confirmed draft into Committing and returns it.
func (s *Session) RequestCommit() ([]string, error) {
	next, err := s.state.RequestCommit()
	if err != nil {
		return nil, err
	}
	s.state = next
	return slices.Clone(s.draft), nil
}

// CommitSucceeded closes the session after the draft was persisted.
func (s *Session) CommitSucceeded() error {
	next, err := s.state.Succeed()
	if err != nil {
		return err
	}
	s.reset(next)
	return nil
}

// CommitFailed reopens the draft after persistence failed.
func (s *Session) CommitFailed() error {
	next, err := s.state.Fail()
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) reset(state State) {
	s.state = state
	s.section = order.UnknownSection
	s.original = nil
	s.draft = nil
}

// IsOpen reports whether a section is being edited or committed.
func (s *Session) IsOpen() bool {
	return s.state == Editing || s.state == Committing
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Section() order.Section {
	return s.section
}

// Original returns a copy of the values captured by Begin.
func (s *Session) Original() []string {
	return slices.Clone(s.original)
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() []string {
	return slices.Clone(s.draft)
}
