package validate

import "fmt"

// Nested validates a child object under name. A fresh context is opened over
// the child, block runs against it, and every resulting violation is merged
// into c with its path rewritten to "name.<child path>". A nil child is
// absent and produces nothing.
//
// Traversal follows the declared rule blocks, not runtime metadata, so cycles
// can only arise when the caller declares a self-referential Nested chain.
// Rule blocks over cyclic object graphs are the caller's responsibility.
func Nested[V any](c *Context, name string, child *V, block func(*Context, V)) {
	if child == nil {
		return
	}

	cc := Open(*child)
	block(cc, *child)
	c.merge(name, cc)
}

// Each validates every element of children in order. For index i the merged
// paths read "name[i].<child path>". A nil slice is absent and produces
// nothing.
func Each[E any](c *Context, name string, children []E, block func(*Context, E)) {
	for i, e := range children {
		cc := Open(e)
		block(cc, e)
		c.merge(fmt.Sprintf("%s[%d]", name, i), cc)
	}
}
