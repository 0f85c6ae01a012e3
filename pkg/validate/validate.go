package validate

// Validate opens a context over target, runs block against it and inspects
// the result. When block recorded no violations, target is returned unchanged
// so calls can be chained. Otherwise the complete violation set is returned
// as a Violations error.
//
//	emp, err := validate.Validate(emp, func(c *validate.Context) {
//		validate.String(c, "name", &emp.Name).IsNotBlank()
//		validate.Number(c, "age", &emp.Age).IsBetween(18, 120)
//	})
func Validate[T any](target T, block func(*Context)) (T, error) {
	c := Open(target)
	block(c)
	if vs := c.Violations(); !vs.IsEmpty() {
		return target, vs
	}
	return target, nil
}
