package constraint

import (
	"fmt"
	"reflect"
	"strings"
)

// Param is a single named constraint parameter. Parameter order is
// significant: message templates receive one placeholder per parameter in
// declaration order.
type Param struct {
	Name  string
	Value any
}

// P builds a Param.
func P(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// Constraint identifies a validation rule together with the parameters it was
// declared with, e.g. Between carries {start, end}. Constraints are immutable
// by convention: build them with New and never mutate the parameter slice.
type Constraint struct {
	Name   string
	Params []Param
}

// New creates a constraint descriptor.
func New(name string, params ...Param) Constraint {
	return Constraint{Name: name, Params: params}
}

// Equal reports whether two constraints carry the same name and the same
// ordered parameter list.
func (c Constraint) Equal(o Constraint) bool {
	if c.Name != o.Name || len(c.Params) != len(o.Params) {
		return false
	}
	for i, p := range c.Params {
		if p.Name != o.Params[i].Name || !reflect.DeepEqual(p.Value, o.Params[i].Value) {
			return false
		}
	}
	return true
}

// String renders the constraint in its raw form, e.g. "Between(start=0, end=10)".
func (c Constraint) String() string {
	if len(c.Params) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = fmt.Sprintf("%s=%v", p.Name, p.Value)
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}
