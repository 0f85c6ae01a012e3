package validate

import (
	"github.com/go-veto/veto/pkg/constraint"
)

// SliceField is the rule handle for slice properties: emptiness and size
// rules. Element-wise validation goes through Each.
type SliceField[E any] struct {
	ctx    *Context
	name   string
	values []E
}

// Slice opens a rule chain for a slice property. A nil slice marks the
// property as absent.
func Slice[E any](c *Context, name string, values []E) *SliceField[E] {
	return &SliceField[E]{ctx: c, name: name, values: values}
}

func (f *SliceField[E]) check(con constraint.Constraint, pred func([]E) bool) {
	if f.values == nil {
		return
	}
	f.ctx.check(f.name, f.values, con, func() bool { return pred(f.values) })
}

// IsNotNull checks that the slice is present (non-nil). An empty slice is
// present.
func (f *SliceField[E]) IsNotNull() *SliceField[E] {
	var v any
	if f.values != nil {
		v = f.values
	}
	f.ctx.check(f.name, v, constraint.New("NotNull"), func() bool { return f.values != nil })
	return f
}

// IsEmpty checks that the slice has no elements.
func (f *SliceField[E]) IsEmpty() *SliceField[E] {
	f.check(constraint.New("Empty"), func(vs []E) bool {
		return len(vs) == 0
	})
	return f
}

// IsNotEmpty checks that the slice has at least one element.
func (f *SliceField[E]) IsNotEmpty() *SliceField[E] {
	f.check(constraint.New("NotEmpty"), func(vs []E) bool {
		return len(vs) > 0
	})
	return f
}

// HasSize checks that the element count lies in [min, max].
func (f *SliceField[E]) HasSize(min, max int) *SliceField[E] {
	f.check(constraint.New("Size", constraint.P("min", min), constraint.P("max", max)), func(vs []E) bool {
		return len(vs) >= min && len(vs) <= max
	})
	return f
}
