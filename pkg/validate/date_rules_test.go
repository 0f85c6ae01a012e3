package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-veto/veto/pkg/validate"
)

func TestTimeRules(t *testing.T) {
	t.Parallel()
	newYear := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	midYear := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)

	t.Run("IsBefore and IsAfter are strict", func(t *testing.T) {
		c := validate.Open(nil)
		v := newYear
		validate.Time(c, "a", &v).IsBefore(newYear)
		validate.Time(c, "b", &v).IsAfter(newYear)

		vs := c.Violations()
		require.Len(t, vs, 2)
		va, _ := vs.Get("a")
		vb, _ := vs.Get("b")
		assert.Equal(t, "Before", va.Constraint.Name)
		assert.Equal(t, "After", vb.Constraint.Name)
	})

	t.Run("IsBetween includes both bounds", func(t *testing.T) {
		for _, v := range []time.Time{newYear, midYear, yearEnd} {
			c := validate.Open(nil)
			validate.Time(c, "when", &v).IsBetween(newYear, yearEnd)
			assert.Empty(t, c.Violations(), v)
		}
	})

	t.Run("IsBetween fails outside the window", func(t *testing.T) {
		c := validate.Open(nil)
		v := newYear.AddDate(-1, 0, 0)
		validate.Time(c, "when", &v).IsBetween(newYear, yearEnd)

		vs := c.Violations()
		require.Len(t, vs, 1)
		assert.Equal(t, "Between", vs[0].Constraint.Name)
	})

	t.Run("IsEqualTo compares instants across locations", func(t *testing.T) {
		c := validate.Open(nil)
		v := midYear.In(time.FixedZone("UTC+2", 2*3600))
		validate.Time(c, "when", &v).IsEqualTo(midYear)
		assert.Empty(t, c.Violations())
	})

	t.Run("absent time satisfies comparison rules", func(t *testing.T) {
		c := validate.Open(nil)
		validate.Time(c, "when", nil).IsAfter(newYear).IsBetween(newYear, yearEnd)
		assert.Empty(t, c.Violations())
	})

	t.Run("absent time fails IsNotNull", func(t *testing.T) {
		c := validate.Open(nil)
		validate.Time(c, "when", nil).IsNotNull()
		require.Len(t, c.Violations(), 1)
	})
}
