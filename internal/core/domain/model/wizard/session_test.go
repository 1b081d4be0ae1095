package wizard_test

import (
	"testing"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, s *wizard.Session, step wizard.Step) {
	t.Helper()
	for _, field := range step.Fields() {
		_, err := s.Set(field, "value of "+string(field))
		require.NoError(t, err)
	}
}

func TestNewSession(t *testing.T) {
	t.Run("order wizard starts on the summary panel", func(t *testing.T) {
		s, err := wizard.NewSession(wizard.OrderKind)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, wizard.SummaryStep, s.Step())
		assert.False(t, s.IsFinalStep())
		assert.Len(t, s.Values(), 15)
	})

	t.Run("product wizard has a single panel", func(t *testing.T) {
		s, err := wizard.NewSession(wizard.ProductKind)

		require.NoError(t, err)
		assert.Equal(t, wizard.ProductStep, s.Step())
		assert.True(t, s.IsFinalStep())
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := wizard.NewSession(wizard.UnknownKind)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s wizard.Session

		require.ErrorIs(t, s.Validate(), wizard.ErrSessionIsNotConstructed)
	})
}

func TestSession_Validation(t *testing.T) {
	t.Run("every panel starts invalid", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)

		assert.False(t, s.StepValid(wizard.SummaryStep))
		assert.Equal(t, wizard.SummaryStep.Fields(), s.InvalidFields(wizard.SummaryStep))
	})

	t.Run("a whitespace value is invalid", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)

		valid, err := s.Set(wizard.ProductName, "   ")

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("a panel is valid iff all its fields are filled", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)
		fill(t, s, wizard.ShipToStep)

		assert.True(t, s.StepValid(wizard.ShipToStep))
		assert.False(t, s.StepValid(wizard.SummaryStep))

		valid, err := s.Set(wizard.ShipToZIP, "")
		require.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, []wizard.FieldID{wizard.ShipToZIP}, s.InvalidFields(wizard.ShipToStep))
	})

	t.Run("fields of another wizard are rejected", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)

		_, err := s.Set(wizard.ShipToName, "x")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSession_Advance(t *testing.T) {
	t.Run("navigation ignores validity", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)

		step, err := s.Advance()
		require.NoError(t, err)
		assert.Equal(t, wizard.ShipToStep, step)

		step, err = s.Advance()
		require.NoError(t, err)
		assert.Equal(t, wizard.CustomerStep, step)
		assert.True(t, s.IsFinalStep())
	})

	t.Run("cannot advance past the last panel", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)

		_, err := s.Advance()

		require.ErrorIs(t, err, wizard.ErrNoNextStep)
		assert.Equal(t, wizard.ProductStep, s.Step())
	})
}

func TestSession_ValidateSubmit(t *testing.T) {
	t.Run("submit before the last panel is refused", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)
		fill(t, s, wizard.SummaryStep)

		require.ErrorIs(t, s.ValidateSubmit(), wizard.ErrNotFinalStep)
	})

	t.Run("submit reports every missing field", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)
		_, _ = s.Set(wizard.ProductName, "Pen")

		err := s.ValidateSubmit()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product.price")
		assert.Contains(t, err.Error(), "product.quantity")
	})

	t.Run("zero value cannot be submitted", func(t *testing.T) {
		var s wizard.Session

		require.ErrorIs(t, s.ValidateSubmit(), wizard.ErrSessionIsNotConstructed)
	})

	t.Run("submit is gated by the last panel only", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)
		_, _ = s.Advance()
		_, _ = s.Advance()
		fill(t, s, wizard.CustomerStep)

		require.NoError(t, s.ValidateSubmit())
	})
}

func TestSession_ProductPayload(t *testing.T) {
	t.Run("derives the total price", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)
		_, _ = s.Set(wizard.ProductName, " Pen ")
		_, _ = s.Set(wizard.ProductPrice, "10")
		_, _ = s.Set(wizard.ProductQuantity, "3")

		p, err := s.ProductPayload(7, "USD")

		require.NoError(t, err)
		assert.Equal(t, order.ID(7), p.OrderID)
		assert.Equal(t, "Pen", p.Name)
		assert.Equal(t, 3, p.Quantity)
		assert.InDelta(t, 30.0, p.TotalPrice, 1e-9)
		assert.Equal(t, "USD", p.Currency)
	})

	t.Run("rejects numbers that do not parse", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.ProductKind)
		_, _ = s.Set(wizard.ProductName, "Pen")
		_, _ = s.Set(wizard.ProductPrice, "ten")
		_, _ = s.Set(wizard.ProductQuantity, "1.5")

		_, err := s.ProductPayload(7, "USD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "product.price")
		assert.Contains(t, err.Error(), "product.quantity")
	})

	t.Run("rejects prices that are not finite", func(t *testing.T) {
		for _, price := range []string{"NaN", "Inf", "-inf", "1e400"} {
			s, _ := wizard.NewSession(wizard.ProductKind)
			_, _ = s.Set(wizard.ProductName, "Pen")
			_, _ = s.Set(wizard.ProductPrice, price)
			_, _ = s.Set(wizard.ProductQuantity, "1")

			_, err := s.ProductPayload(7, "USD")

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, price)
			assert.Contains(t, err.Error(), "product.price", price)
		}
	})

	t.Run("order wizard has no product", func(t *testing.T) {
		s, _ := wizard.NewSession(wizard.OrderKind)

		_, err := s.ProductPayload(7, "USD")

		require.Error(t, err)
	})
}

func TestSession_OrderPayload(t *testing.T) {
	s, _ := wizard.NewSession(wizard.OrderKind)
	_, _ = s.Set(wizard.SummaryCustomer, "Alice")
	_, _ = s.Set(wizard.SummaryCurrency, "EUR")
	_, _ = s.Set(wizard.ShipToAddress, "Main St 1")
	_, _ = s.Set(wizard.CustomerAddress, "Side St 2")
	_, _ = s.Set(wizard.CustomerEmail, "a@example.com")

	o, err := s.OrderPayload()

	require.NoError(t, err)
	assert.Zero(t, o.ID)
	assert.Equal(t, "Alice", o.Summary.Customer)
	assert.Equal(t, "EUR", o.Summary.Currency)
	assert.Equal(t, "Main St 1", o.ShipTo.Address)
	assert.Equal(t, "Side St 2", o.CustomerInfo.Address)
	assert.Equal(t, "a@example.com", o.CustomerInfo.Email)
}

func TestFieldID_Step(t *testing.T) {
	assert.Equal(t, wizard.ShipToStep, wizard.ShipToAddress.Step())
	assert.Equal(t, wizard.CustomerStep, wizard.CustomerAddress.Step())
	assert.Equal(t, wizard.ProductStep, wizard.ProductPrice.Step())
	assert.Equal(t, wizard.UnknownStep, wizard.FieldID("nope").Step())
}

func TestParseKind(t *testing.T) {
	k, err := wizard.ParseKind("order")
	require.NoError(t, err)
	assert.Equal(t, wizard.OrderKind, k)

	k, err = wizard.ParseKind("product")
	require.NoError(t, err)
	assert.Equal(t, wizard.ProductKind, k)

	_, err = wizard.ParseKind("invoice")
	require.Error(t, err)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "order-summary", wizard.SummaryStep.String())
	assert.Equal(t, "order-ship-to", wizard.ShipToStep.String())
	assert.Equal(t, "order-customer", wizard.CustomerStep.String())
	assert.Equal(t, "product", wizard.ProductStep.String())
}
