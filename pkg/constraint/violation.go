package constraint

import "reflect"

// Violation records that a constraint failed for a property path and the
// value the property held at the time. For absent properties Value is nil.
type Violation struct {
	Path       string
	Value      any
	Constraint Constraint
}

// Equal reports structural equality of the (path, value, constraint) triple.
// Violation sets use it to collapse duplicates.
func (v Violation) Equal(o Violation) bool {
	return v.Path == o.Path &&
		reflect.DeepEqual(v.Value, o.Value) &&
		v.Constraint.Equal(o.Constraint)
}

// String renders the raw, locale-agnostic form of the violation. Message
// resolution falls back to it when no template is available.
func (v Violation) String() string {
	return v.Path + ": " + v.Constraint.String()
}
