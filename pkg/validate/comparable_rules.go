package validate

import (
	"slices"

	"github.com/go-veto/veto/pkg/constraint"
)

// ComparableField is the rule handle for properties of comparable types:
// presence and equality rules.
type ComparableField[V comparable] struct {
	field[V]
}

// Comparable opens a rule chain for a property of a comparable type. A nil
// value marks the property as absent.
func Comparable[V comparable](c *Context, name string, value *V) *ComparableField[V] {
	return &ComparableField[V]{field[V]{ctx: c, name: name, value: value}}
}

func (f *ComparableField[V]) IsNull() *ComparableField[V] {
	f.isNull()
	return f
}

func (f *ComparableField[V]) IsNotNull() *ComparableField[V] {
	f.isNotNull()
	return f
}

// IsEqualTo checks that the value equals other.
func (f *ComparableField[V]) IsEqualTo(other V) *ComparableField[V] {
	f.check(constraint.New("Equals", constraint.P("other", other)), func(v V) bool {
		return v == other
	})
	return f
}

// IsNotEqualTo checks that the value differs from other.
func (f *ComparableField[V]) IsNotEqualTo(other V) *ComparableField[V] {
	f.check(constraint.New("NotEquals", constraint.P("other", other)), func(v V) bool {
		return v != other
	})
	return f
}

// IsIn checks that the value is one of allowed.
func (f *ComparableField[V]) IsIn(allowed ...V) *ComparableField[V] {
	f.check(constraint.New("In", constraint.P("allowed", allowed)), func(v V) bool {
		return slices.Contains(allowed, v)
	})
	return f
}

// IsNotIn checks that the value is none of denied.
func (f *ComparableField[V]) IsNotIn(denied ...V) *ComparableField[V] {
	f.check(constraint.New("NotIn", constraint.P("denied", denied)), func(v V) bool {
		return !slices.Contains(denied, v)
	})
	return f
}
