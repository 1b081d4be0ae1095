package editing_test

import (
	"testing"

	"orderadmin/internal/core/domain/model/editing"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shipValues = []string{"Alice", "Main St 1", "10115", "Berlin", "DE"}

func TestSession_BeginCancel(t *testing.T) {
	t.Run("cancel restores the captured values", func(t *testing.T) {
		// Given
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))
		require.NoError(t, s.SetDraft(0, "Bob"))

		// When
		restored, err := s.Cancel()

		// Then
		require.NoError(t, err)
		assert.Equal(t, shipValues, restored)
		assert.Equal(t, editing.Idle, s.State())
		assert.False(t, s.IsOpen())
		assert.Nil(t, s.Draft())
	})

	t.Run("begin copies the input", func(t *testing.T) {
		values := []string{"a", "b", "c", "d", "e"}
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.CustomerSection, values))

		values[0] = "changed"

		assert.Equal(t, "a", s.Original()[0])
		assert.Equal(t, "a", s.Draft()[0])
	})

	t.Run("begin is refused while editing", func(t *testing.T) {
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))

		err := s.Begin(order.CustomerSection, shipValues)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.ShipInfo, s.Section())
	})

	t.Run("begin rejects an unknown section", func(t *testing.T) {
		s := editing.NewSession()

		require.Error(t, s.Begin(order.UnknownSection, shipValues))
		assert.Equal(t, editing.Idle, s.State())
	})

	t.Run("begin rejects a wrong number of values", func(t *testing.T) {
		s := editing.NewSession()

		require.Error(t, s.Begin(order.ShipInfo, shipValues[:3]))
	})

	t.Run("cancel is refused when idle", func(t *testing.T) {
		_, err := editing.NewSession().Cancel()

		require.Error(t, err)
	})
}

func TestSession_Commit(t *testing.T) {
	t.Run("successful commit returns the draft and closes", func(t *testing.T) {
		// Given
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))
		require.NoError(t, s.SetDraft(4, "FR"))

		// When
		draft, err := s.RequestCommit()

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Main St 1", "10115", "Berlin", "FR"}, draft)
		assert.Equal(t, editing.Committing, s.State())
		assert.True(t, s.IsOpen())

		require.NoError(t, s.CommitSucceeded())
		assert.Equal(t, editing.Idle, s.State())
	})

	t.Run("failed commit keeps the draft editable", func(t *testing.T) {
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))
		require.NoError(t, s.SetDraft(1, "Elm St 5"))
		_, err := s.RequestCommit()
		require.NoError(t, err)

		require.NoError(t, s.CommitFailed())

		assert.Equal(t, editing.Editing, s.State())
		assert.Equal(t, "Elm St 5", s.Draft()[1])
		require.NoError(t, s.SetDraft(1, "Oak St 9"))
	})

	t.Run("commit is refused when idle", func(t *testing.T) {
		_, err := editing.NewSession().RequestCommit()

		require.Error(t, err)
	})

	t.Run("fields cannot change while committing", func(t *testing.T) {
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))
		_, err := s.RequestCommit()
		require.NoError(t, err)

		require.Error(t, s.SetDraft(0, "x"))
		_, err = s.Cancel()
		require.Error(t, err)
	})

	t.Run("set draft checks bounds", func(t *testing.T) {
		s := editing.NewSession()
		require.NoError(t, s.Begin(order.ShipInfo, shipValues))

		require.Error(t, s.SetDraft(5, "x"))
		require.Error(t, s.SetDraft(-1, "x"))
	})
}

func TestState_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    editing.State
		apply   func(editing.State) (editing.State, error)
		want    editing.State
		wantErr bool
	}{
		{"begin from idle", editing.Idle, editing.State.Begin, editing.Editing, false},
		{"begin from editing", editing.Editing, editing.State.Begin, 0, true},
		{"cancel from editing", editing.Editing, editing.State.Cancel, editing.Cancelled, false},
		{"cancel from committing", editing.Committing, editing.State.Cancel, 0, true},
		{"commit from editing", editing.Editing, editing.State.RequestCommit, editing.Committing, false},
		{"commit from idle", editing.Idle, editing.State.RequestCommit, 0, true},
		{"succeed from committing", editing.Committing, editing.State.Succeed, editing.Idle, false},
		{"fail from committing", editing.Committing, editing.State.Fail, editing.Editing, false},
		{"fail from editing", editing.Editing, editing.State.Fail, 0, true},
		{"finish from cancelled", editing.Cancelled, editing.State.Finish, editing.Idle, false},
		{"begin from unknown", editing.Unknown, editing.State.Begin, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Editing", editing.Editing.String())
	assert.Equal(t, "Unknown", editing.State(99).String())
}
