package validate

// AnyField is the rule handle for properties whose type supports nothing
// beyond presence checks.
type AnyField[V any] struct {
	field[V]
}

// Any opens a rule chain for a property of arbitrary type. A nil value marks
// the property as absent.
func Any[V any](c *Context, name string, value *V) *AnyField[V] {
	return &AnyField[V]{field[V]{ctx: c, name: name, value: value}}
}

// IsNull checks that the property is absent.
func (f *AnyField[V]) IsNull() *AnyField[V] {
	f.isNull()
	return f
}

// IsNotNull checks that the property is present.
func (f *AnyField[V]) IsNotNull() *AnyField[V] {
	f.isNotNull()
	return f
}
