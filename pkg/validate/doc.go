// Package validate implements a declarative, recursive object-validation
// engine. Host code opens a validation context over a target object, declares
// per-property rules against it, and receives the complete set of violated
// rules as a single structured error.
//
// # Architecture
//
// Each source file groups a family of rules for a specific property type
// (string_rules.go, numeric_rules.go, date_rules.go, …). A rule chain starts
// with a typed field constructor — String, Number, Ordered, Comparable, Time,
// Slice or Any — that binds a property name and its (possibly absent) value
// to the context. Every rule method records at most one violation and returns
// the handle, so rules chain on the same property.
//
// Two properties shape the violation set:
//
//   - First violation wins. Once a property path holds a violation, later
//     rule checks against the same path are discarded. A field reports its
//     first broken rule, not all of them.
//   - Absence is valid. A nil value satisfies every rule except the explicit
//     presence rules IsNull and IsNotNull.
//
// Nested and Each descend into child objects and ordered collections,
// prefixing child violation paths with "parent." and "parent[i]." so the
// final set addresses every failing field of the whole object graph.
//
// # Usage
//
//	emp, err := validate.Validate(emp, func(c *validate.Context) {
//		validate.String(c, "name", &emp.Name).IsNotBlank().HasSize(1, 80)
//		validate.Number(c, "age", emp.Age).IsNotNull().IsPositive()
//		validate.Nested(c, "address", emp.Address, func(c *validate.Context, a Address) {
//			validate.String(c, "city", &a.City).IsNotBlank()
//		})
//	})
//	if err != nil {
//		for _, v := range validate.Extract(err) {
//			// v.Path, v.Value, v.Constraint
//		}
//	}
//
// # Error Handling
//
// Rule failures are never raised mid-traversal; they accumulate in the
// context and surface once, at the top, as a Violations error. Use Extract or
// errors.As to recover the structured set. Rendering violations as localized
// text is the message package's job.
//
// # Concurrency
//
// A context tree is exclusively owned by the validation call that created it.
// The package keeps no global state, so concurrent validations of different
// objects need no synchronization.
package validate
