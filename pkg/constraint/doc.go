// Package constraint defines the data model shared by the validation engine
// and the message resolver: constraint descriptors and violations.
//
// A Constraint is pure data — a rule name plus the ordered, named parameters
// the rule was declared with. It carries no behavior; the predicates that
// decide whether a value satisfies a rule live with the rule catalogue in the
// validate package, and the templates that turn a failed constraint into a
// human-readable message live in the message package. Both sides meet on the
// constraint name and parameter names defined here.
//
// A Violation ties a failed constraint to the dotted/bracketed property path
// it was recorded under ("address.city", "phones[2].number") and the value
// the property held. Violations compare structurally via Equal so that
// collections of them can behave as sets.
package constraint
