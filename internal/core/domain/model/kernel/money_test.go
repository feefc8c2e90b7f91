package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid currency", func(t *testing.T) {
		m, err := kernel.NewMoney(10000, kernel.USD)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(10000), m.Amount())
		assert.Equal(t, kernel.USD, m.Currency())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0, kernel.EUR)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should accept negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(-500, kernel.GBP)

		require.NoError(t, err)
		assert.Equal(t, int64(-500), m.Amount())
		assert.False(t, m.IsPositive())
	})

	t.Run("should fail with unsupported currency", func(t *testing.T) {
		_, err := kernel.NewMoney(100, kernel.Currency("JPY"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty currency", func(t *testing.T) {
		_, err := kernel.NewMoney(100, "")

		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should fail validation for zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add amounts of the same currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(10000, kernel.USD)
		b, _ := kernel.NewMoney(2500, kernel.USD)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), sum.Amount())
		assert.Equal(t, kernel.USD, sum.Currency())
	})

	t.Run("should not mutate the operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		b, _ := kernel.NewMoney(200, kernel.USD)

		_, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(100), a.Amount())
		assert.Equal(t, int64(200), b.Amount())
	})

	t.Run("should be commutative", func(t *testing.T) {
		a, _ := kernel.NewMoney(3, kernel.USD)
		b, _ := kernel.NewMoney(7, kernel.USD)

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)

		equal, err := ab.IsEqual(ba)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should be associative", func(t *testing.T) {
		a, _ := kernel.NewMoney(1, kernel.USD)
		b, _ := kernel.NewMoney(2, kernel.USD)
		c, _ := kernel.NewMoney(3, kernel.USD)

		ab, err := a.Add(b)
		require.NoError(t, err)
		left, err := ab.Add(c)
		require.NoError(t, err)

		bc, err := b.Add(c)
		require.NoError(t, err)
		right, err := a.Add(bc)
		require.NoError(t, err)

		equal, err := left.IsEqual(right)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should fail with currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		b, _ := kernel.NewMoney(100, kernel.EUR)

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("should fail with unconstructed operand", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("should subtract amounts of the same currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(10000, kernel.USD)
		b, _ := kernel.NewMoney(2500, kernel.USD)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, int64(7500), diff.Amount())
	})

	t.Run("should produce negative result when subtrahend is larger", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		b, _ := kernel.NewMoney(300, kernel.USD)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, int64(-200), diff.Amount())
	})

	t.Run("should fail with currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.GBP)
		b, _ := kernel.NewMoney(100, kernel.EUR)

		_, err := a.Subtract(b)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should scale by an integer factor exactly", func(t *testing.T) {
		m, _ := kernel.NewMoney(10000, kernel.USD)

		result := m.Multiply(2)

		assert.Equal(t, int64(20000), result.Amount())
		assert.Equal(t, kernel.USD, result.Currency())
	})

	t.Run("should round to nearest minor unit", func(t *testing.T) {
		m, _ := kernel.NewMoney(20000, kernel.USD)

		result := m.Multiply(0.08)

		assert.Equal(t, int64(1600), result.Amount())
	})

	t.Run("should round ties half up", func(t *testing.T) {
		m, _ := kernel.NewMoney(25, kernel.USD)

		result := m.Multiply(0.1) // 2.5 -> 3

		assert.Equal(t, int64(3), result.Amount())
	})

	t.Run("should round negative ties toward positive infinity", func(t *testing.T) {
		m, _ := kernel.NewMoney(-25, kernel.USD)

		result := m.Multiply(0.1) // -2.5 -> -2

		assert.Equal(t, int64(-2), result.Amount())
	})

	t.Run("should permit negative factors for credits", func(t *testing.T) {
		m, _ := kernel.NewMoney(1000, kernel.USD)

		result := m.Multiply(-0.5)

		assert.Equal(t, int64(-500), result.Amount())
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		m, _ := kernel.NewMoney(100, kernel.USD)

		_ = m.Multiply(3)

		assert.Equal(t, int64(100), m.Amount())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should return true for same amount and currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		b, _ := kernel.NewMoney(100, kernel.USD)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should return false for different currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		b, _ := kernel.NewMoney(100, kernel.EUR)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail for unconstructed money", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, kernel.USD)
		var b kernel.Money

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format dollars and cents", func(t *testing.T) {
		m, _ := kernel.NewMoney(1234, kernel.USD)

		assert.Equal(t, "$12.34", m.String())
	})

	t.Run("should pad cents to two digits", func(t *testing.T) {
		m, _ := kernel.NewMoney(10005, kernel.EUR)

		assert.Equal(t, "€100.05", m.String())
	})

	t.Run("should render negative amounts with a leading sign", func(t *testing.T) {
		m, _ := kernel.NewMoney(-5, kernel.GBP)

		assert.Equal(t, "-£0.05", m.String())
	})

	t.Run("should render zero", func(t *testing.T) {
		m, _ := kernel.NewMoney(0, kernel.USD)

		assert.Equal(t, "$0.00", m.String())
	})
}

func TestCurrency_Validate(t *testing.T) {
	t.Run("should accept supported currencies", func(t *testing.T) {
		for _, c := range []kernel.Currency{kernel.USD, kernel.EUR, kernel.GBP} {
			require.NoError(t, c.Validate())
		}
	})

	t.Run("should reject unknown currency", func(t *testing.T) {
		err := kernel.Currency("BTC").Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a supported currency")
	})
}
