package validate

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-veto/veto/pkg/constraint"
)

// NumberField is the rule handle for numeric properties: presence, equality,
// ordering, sign, parity and digit-count rules.
type NumberField[V Numeric] struct {
	field[V]
}

// Number opens a rule chain for a numeric property. A nil value marks the
// property as absent.
func Number[V Numeric](c *Context, name string, value *V) *NumberField[V] {
	return &NumberField[V]{field[V]{ctx: c, name: name, value: value}}
}

func (f *NumberField[V]) IsNull() *NumberField[V] {
	f.isNull()
	return f
}

func (f *NumberField[V]) IsNotNull() *NumberField[V] {
	f.isNotNull()
	return f
}

func (f *NumberField[V]) IsEqualTo(other V) *NumberField[V] {
	f.check(constraint.New("Equals", constraint.P("other", other)), func(v V) bool {
		return v == other
	})
	return f
}

func (f *NumberField[V]) IsNotEqualTo(other V) *NumberField[V] {
	f.check(constraint.New("NotEquals", constraint.P("other", other)), func(v V) bool {
		return v != other
	})
	return f
}

func (f *NumberField[V]) IsIn(allowed ...V) *NumberField[V] {
	f.check(constraint.New("In", constraint.P("allowed", allowed)), func(v V) bool {
		return slices.Contains(allowed, v)
	})
	return f
}

func (f *NumberField[V]) IsNotIn(denied ...V) *NumberField[V] {
	f.check(constraint.New("NotIn", constraint.P("denied", denied)), func(v V) bool {
		return !slices.Contains(denied, v)
	})
	return f
}

func (f *NumberField[V]) IsLessThan(limit V) *NumberField[V] {
	f.check(constraint.New("Less", constraint.P("limit", limit)), func(v V) bool {
		return v < limit
	})
	return f
}

func (f *NumberField[V]) IsLessThanOrEqualTo(limit V) *NumberField[V] {
	f.check(constraint.New("LessOrEqual", constraint.P("limit", limit)), func(v V) bool {
		return v <= limit
	})
	return f
}

func (f *NumberField[V]) IsGreaterThan(limit V) *NumberField[V] {
	f.check(constraint.New("Greater", constraint.P("limit", limit)), func(v V) bool {
		return v > limit
	})
	return f
}

func (f *NumberField[V]) IsGreaterThanOrEqualTo(limit V) *NumberField[V] {
	f.check(constraint.New("GreaterOrEqual", constraint.P("limit", limit)), func(v V) bool {
		return v >= limit
	})
	return f
}

func (f *NumberField[V]) IsBetween(start, end V) *NumberField[V] {
	f.check(constraint.New("Between", constraint.P("start", start), constraint.P("end", end)), func(v V) bool {
		return v >= start && v <= end
	})
	return f
}

func (f *NumberField[V]) IsNotBetween(start, end V) *NumberField[V] {
	f.check(constraint.New("NotBetween", constraint.P("start", start), constraint.P("end", end)), func(v V) bool {
		return v < start || v > end
	})
	return f
}

// IsZero checks that the value is zero.
func (f *NumberField[V]) IsZero() *NumberField[V] {
	f.check(constraint.New("Zero"), func(v V) bool {
		return v == 0
	})
	return f
}

// IsNotZero checks that the value is not zero.
func (f *NumberField[V]) IsNotZero() *NumberField[V] {
	f.check(constraint.New("NotZero"), func(v V) bool {
		return v != 0
	})
	return f
}

// IsPositive checks that the value is strictly greater than zero.
func (f *NumberField[V]) IsPositive() *NumberField[V] {
	f.check(constraint.New("Positive"), func(v V) bool {
		return v > 0
	})
	return f
}

// IsPositiveOrZero checks that the value is greater than or equal to zero.
func (f *NumberField[V]) IsPositiveOrZero() *NumberField[V] {
	f.check(constraint.New("PositiveOrZero"), func(v V) bool {
		return v >= 0
	})
	return f
}

// IsNegative checks that the value is strictly less than zero.
func (f *NumberField[V]) IsNegative() *NumberField[V] {
	f.check(constraint.New("Negative"), func(v V) bool {
		return v < 0
	})
	return f
}

// IsNegativeOrZero checks that the value is less than or equal to zero.
func (f *NumberField[V]) IsNegativeOrZero() *NumberField[V] {
	f.check(constraint.New("NegativeOrZero"), func(v V) bool {
		return v <= 0
	})
	return f
}

// IsEven checks that the value is even. Floats are even when they divide by
// two without remainder.
func (f *NumberField[V]) IsEven() *NumberField[V] {
	f.check(constraint.New("Even"), func(v V) bool {
		return remainderOfTwo(v) == 0
	})
	return f
}

// IsOdd checks that the value is odd.
func (f *NumberField[V]) IsOdd() *NumberField[V] {
	f.check(constraint.New("Odd"), func(v V) bool {
		return remainderOfTwo(v) != 0
	})
	return f
}

// HasDigits checks that the decimal representation of the absolute integer
// part of the value has between min and max digits. The sign is not counted.
func (f *NumberField[V]) HasDigits(min, max int) *NumberField[V] {
	f.check(constraint.New("Digits", constraint.P("min", min), constraint.P("max", max)), func(v V) bool {
		n := integerDigits(v)
		return n >= min && n <= max
	})
	return f
}

// remainderOfTwo dispatches on the runtime kind so integer parity stays exact
// for the full int64/uint64 range.
func remainderOfTwo(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int() % 2)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint() % 2)
	case reflect.Float32, reflect.Float64:
		return math.Mod(rv.Float(), 2)
	}
	return 0
}

// integerDigits counts the decimal digits of the absolute integer part.
func integerDigits(v any) int {
	rv := reflect.ValueOf(v)

	var s string
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strings.TrimPrefix(strconv.FormatInt(rv.Int(), 10), "-")
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		s = strconv.FormatFloat(math.Abs(rv.Float()), 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
	default:
		return 0
	}
	return len(s)
}
