package validate

import (
	"github.com/go-veto/veto/pkg/constraint"
)

// Context accumulates the violations recorded while validating one object.
// A context is created by Open (or implicitly by Validate, Nested and Each),
// lives for exactly one validation invocation and must not be shared between
// concurrent validations. All mutation happens through rule checks and child
// merges; the target itself is never modified.
type Context struct {
	target     any
	violations []constraint.Violation
}

// Open creates a context bound to target with an empty violation set.
func Open(target any) *Context {
	return &Context{target: target}
}

// Target returns the object this context was opened over.
func (c *Context) Target() any {
	return c.target
}

// has reports whether a violation is already recorded for path.
func (c *Context) has(path string) bool {
	for _, v := range c.violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

// check is the rule-evaluation primitive. The first recorded violation for a
// path wins: once a property has a failure, later checks against the same
// path record nothing. Otherwise pred is evaluated and a violation is
// appended when it reports false.
func (c *Context) check(path string, value any, con constraint.Constraint, pred func() bool) {
	if c.has(path) {
		return
	}
	if !pred() {
		c.violations = append(c.violations, constraint.Violation{
			Path:       path,
			Value:      value,
			Constraint: con,
		})
	}
}

// add appends v unless an equal violation is already present, preserving the
// set semantics of the violation collection across merges.
func (c *Context) add(v constraint.Violation) {
	for _, have := range c.violations {
		if have.Equal(v) {
			return
		}
	}
	c.violations = append(c.violations, v)
}

// merge absorbs a child context, rewriting every child path p to "prefix.p".
func (c *Context) merge(prefix string, child *Context) {
	for _, v := range child.violations {
		v.Path = prefix + "." + v.Path
		c.add(v)
	}
}

// Violations returns a copy of the accumulated violation set. Iteration order
// is insertion order but carries no semantic guarantee.
func (c *Context) Violations() Violations {
	out := make(Violations, len(c.violations))
	copy(out, c.violations)
	return out
}
