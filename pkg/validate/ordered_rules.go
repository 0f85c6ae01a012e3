package validate

import (
	"cmp"
	"slices"

	"github.com/go-veto/veto/pkg/constraint"
)

// OrderedField is the rule handle for properties of naturally ordered types:
// presence, equality and ordering rules.
type OrderedField[V cmp.Ordered] struct {
	field[V]
}

// Ordered opens a rule chain for a property of an ordered type. A nil value
// marks the property as absent.
func Ordered[V cmp.Ordered](c *Context, name string, value *V) *OrderedField[V] {
	return &OrderedField[V]{field[V]{ctx: c, name: name, value: value}}
}

func (f *OrderedField[V]) IsNull() *OrderedField[V] {
	f.isNull()
	return f
}

func (f *OrderedField[V]) IsNotNull() *OrderedField[V] {
	f.isNotNull()
	return f
}

func (f *OrderedField[V]) IsEqualTo(other V) *OrderedField[V] {
	f.check(constraint.New("Equals", constraint.P("other", other)), func(v V) bool {
		return v == other
	})
	return f
}

func (f *OrderedField[V]) IsNotEqualTo(other V) *OrderedField[V] {
	f.check(constraint.New("NotEquals", constraint.P("other", other)), func(v V) bool {
		return v != other
	})
	return f
}

func (f *OrderedField[V]) IsIn(allowed ...V) *OrderedField[V] {
	f.check(constraint.New("In", constraint.P("allowed", allowed)), func(v V) bool {
		return slices.Contains(allowed, v)
	})
	return f
}

func (f *OrderedField[V]) IsNotIn(denied ...V) *OrderedField[V] {
	f.check(constraint.New("NotIn", constraint.P("denied", denied)), func(v V) bool {
		return !slices.Contains(denied, v)
	})
	return f
}

// IsLessThan checks that the value is strictly below limit.
func (f *OrderedField[V]) IsLessThan(limit V) *OrderedField[V] {
	f.check(constraint.New("Less", constraint.P("limit", limit)), func(v V) bool {
		return v < limit
	})
	return f
}

// IsLessThanOrEqualTo checks that the value is at most limit.
func (f *OrderedField[V]) IsLessThanOrEqualTo(limit V) *OrderedField[V] {
	f.check(constraint.New("LessOrEqual", constraint.P("limit", limit)), func(v V) bool {
		return v <= limit
	})
	return f
}

// IsGreaterThan checks that the value is strictly above limit.
func (f *OrderedField[V]) IsGreaterThan(limit V) *OrderedField[V] {
	f.check(constraint.New("Greater", constraint.P("limit", limit)), func(v V) bool {
		return v > limit
	})
	return f
}

// IsGreaterThanOrEqualTo checks that the value is at least limit.
func (f *OrderedField[V]) IsGreaterThanOrEqualTo(limit V) *OrderedField[V] {
	f.check(constraint.New("GreaterOrEqual", constraint.P("limit", limit)), func(v V) bool {
		return v >= limit
	})
	return f
}

// IsBetween checks that the value lies in [start, end], bounds included.
func (f *OrderedField[V]) IsBetween(start, end V) *OrderedField[V] {
	f.check(constraint.New("Between", constraint.P("start", start), constraint.P("end", end)), func(v V) bool {
		return v >= start && v <= end
	})
	return f
}

// IsNotBetween checks that the value lies outside [start, end].
func (f *OrderedField[V]) IsNotBetween(start, end V) *OrderedField[V] {
	f.check(constraint.New("NotBetween", constraint.P("start", start), constraint.P("end", end)), func(v V) bool {
		return v < start || v > end
	})
	return f
}
