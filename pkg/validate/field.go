package validate

import (
	"github.com/go-veto/veto/pkg/constraint"
)

// Numeric is the set of built-in numeric types accepted by Number fields.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// field carries the state shared by every rule handle: the owning context,
// the property name and the possibly absent property value. A nil value
// pointer means the property is absent.
type field[V any] struct {
	ctx   *Context
	name  string
	value *V
}

// check evaluates pred against a present value. Absent values satisfy every
// rule; only the presence rules, which go through checkPresence, inspect
// absence itself.
func (f field[V]) check(con constraint.Constraint, pred func(V) bool) {
	if f.value == nil {
		return
	}
	v := *f.value
	f.ctx.check(f.name, v, con, func() bool { return pred(v) })
}

// checkPresence records a violation when ok is false. The recorded value is
// nil for absent properties.
func (f field[V]) checkPresence(con constraint.Constraint, ok bool) {
	var v any
	if f.value != nil {
		v = *f.value
	}
	f.ctx.check(f.name, v, con, func() bool { return ok })
}

func (f field[V]) isNull() {
	f.checkPresence(constraint.New("Null"), f.value == nil)
}

func (f field[V]) isNotNull() {
	f.checkPresence(constraint.New("NotNull"), f.value != nil)
}
