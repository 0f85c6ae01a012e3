package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-veto/veto/pkg/validate"
)

func firstConstraint(t *testing.T, c *validate.Context) string {
	t.Helper()
	vs := c.Violations()
	require.Len(t, vs, 1)
	return vs[0].Constraint.Name
}

func TestSignRules(t *testing.T) {
	t.Parallel()
	t.Run("IsPositive rejects zero", func(t *testing.T) {
		c := validate.Open(nil)
		n := 0
		validate.Number(c, "n", &n).IsPositive()
		assert.Equal(t, "Positive", firstConstraint(t, c))
	})

	t.Run("IsPositiveOrZero accepts zero", func(t *testing.T) {
		c := validate.Open(nil)
		n := 0
		validate.Number(c, "n", &n).IsPositiveOrZero()
		assert.Empty(t, c.Violations())
	})

	t.Run("IsNegative on a float", func(t *testing.T) {
		c := validate.Open(nil)
		f := 0.5
		validate.Number(c, "f", &f).IsNegative()
		assert.Equal(t, "Negative", firstConstraint(t, c))
	})

	t.Run("IsZero and IsNotZero", func(t *testing.T) {
		c := validate.Open(nil)
		n, z := 3, 0
		validate.Number(c, "n", &n).IsZero()
		validate.Number(c, "z", &z).IsNotZero()

		vs := c.Violations()
		require.Len(t, vs, 2)
		vn, _ := vs.Get("n")
		vz, _ := vs.Get("z")
		assert.Equal(t, "Zero", vn.Constraint.Name)
		assert.Equal(t, "NotZero", vz.Constraint.Name)
	})
}

func TestParityRules(t *testing.T) {
	t.Parallel()
	t.Run("even integers", func(t *testing.T) {
		c := validate.Open(nil)
		n := 4
		validate.Number(c, "n", &n).IsEven()
		assert.Empty(t, c.Violations())
	})

	t.Run("odd integers fail IsEven", func(t *testing.T) {
		c := validate.Open(nil)
		n := 5
		validate.Number(c, "n", &n).IsEven()
		assert.Equal(t, "Even", firstConstraint(t, c))
	})

	t.Run("negative odd integers pass IsOdd", func(t *testing.T) {
		c := validate.Open(nil)
		n := -3
		validate.Number(c, "n", &n).IsOdd()
		assert.Empty(t, c.Violations())
	})

	t.Run("whole floats carry parity", func(t *testing.T) {
		c := validate.Open(nil)
		f := 8.0
		validate.Number(c, "f", &f).IsEven()
		assert.Empty(t, c.Violations())
	})

	t.Run("fractional floats are neither even nor zero-remainder", func(t *testing.T) {
		c := validate.Open(nil)
		f := 2.5
		validate.Number(c, "f", &f).IsEven()
		assert.Equal(t, "Even", firstConstraint(t, c))
	})

	t.Run("parity stays exact for large int64 values", func(t *testing.T) {
		c := validate.Open(nil)
		n := int64(9007199254740993) // odd, not representable as float64
		validate.Number(c, "n", &n).IsOdd()
		assert.Empty(t, c.Violations())
	})
}

func TestDigitRules(t *testing.T) {
	t.Parallel()
	t.Run("counts decimal digits", func(t *testing.T) {
		c := validate.Open(nil)
		n := 12345
		validate.Number(c, "n", &n).HasDigits(5, 5)
		assert.Empty(t, c.Violations())
	})

	t.Run("sign is not counted", func(t *testing.T) {
		c := validate.Open(nil)
		n := -12345
		validate.Number(c, "n", &n).HasDigits(5, 5)
		assert.Empty(t, c.Violations())
	})

	t.Run("fractional part is not counted", func(t *testing.T) {
		c := validate.Open(nil)
		f := -123.456
		validate.Number(c, "f", &f).HasDigits(3, 3)
		assert.Empty(t, c.Violations())
	})

	t.Run("too few digits", func(t *testing.T) {
		c := validate.Open(nil)
		n := 42
		validate.Number(c, "n", &n).HasDigits(3, 6)

		vs := c.Violations()
		require.Len(t, vs, 1)
		assert.Equal(t, "Digits", vs[0].Constraint.Name)
		assert.Equal(t, 3, vs[0].Constraint.Params[0].Value)
		assert.Equal(t, 6, vs[0].Constraint.Params[1].Value)
	})

	t.Run("zero has one digit", func(t *testing.T) {
		c := validate.Open(nil)
		n := 0
		validate.Number(c, "n", &n).HasDigits(1, 1)
		assert.Empty(t, c.Violations())
	})

	t.Run("uint64 beyond int64 range", func(t *testing.T) {
		c := validate.Open(nil)
		n := uint64(18446744073709551615)
		validate.Number(c, "n", &n).HasDigits(20, 20)
		assert.Empty(t, c.Violations())
	})
}

func TestNumberOrderingRules(t *testing.T) {
	t.Parallel()
	t.Run("between scenario from the rule chain", func(t *testing.T) {
		c := validate.Open(nil)
		n := 50
		validate.Number(c, "value", &n).IsBetween(0, 10)

		vs := c.Violations()
		require.Len(t, vs, 1)
		assert.Equal(t, 50, vs[0].Value)
	})

	t.Run("named numeric types work", func(t *testing.T) {
		type celsius float64
		c := validate.Open(nil)
		temp := celsius(-500)
		validate.Number(c, "temp", &temp).IsGreaterThanOrEqualTo(celsius(-273.15))
		assert.Equal(t, "GreaterOrEqual", firstConstraint(t, c))
	})
}
