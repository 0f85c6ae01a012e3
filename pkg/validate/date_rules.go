package validate

import (
	"time"

	"github.com/go-veto/veto/pkg/constraint"
)

// TimeField is the rule handle for time.Time properties. Comparisons use
// time.Time's own ordering rather than the generic ordered handle, matching
// Equal/Before/After semantics across locations.
type TimeField struct {
	field[time.Time]
}

// Time opens a rule chain for a time property. A nil value marks the property
// as absent.
func Time(c *Context, name string, value *time.Time) *TimeField {
	return &TimeField{field[time.Time]{ctx: c, name: name, value: value}}
}

func (f *TimeField) IsNull() *TimeField {
	f.isNull()
	return f
}

func (f *TimeField) IsNotNull() *TimeField {
	f.isNotNull()
	return f
}

// IsEqualTo checks that the value represents the same instant as other.
func (f *TimeField) IsEqualTo(other time.Time) *TimeField {
	f.check(constraint.New("Equals", constraint.P("other", other)), func(v time.Time) bool {
		return v.Equal(other)
	})
	return f
}

// IsBefore checks that the value is strictly before limit.
func (f *TimeField) IsBefore(limit time.Time) *TimeField {
	f.check(constraint.New("Before", constraint.P("limit", limit)), func(v time.Time) bool {
		return v.Before(limit)
	})
	return f
}

// IsAfter checks that the value is strictly after limit.
func (f *TimeField) IsAfter(limit time.Time) *TimeField {
	f.check(constraint.New("After", constraint.P("limit", limit)), func(v time.Time) bool {
		return v.After(limit)
	})
	return f
}

// IsBetween checks that the value lies in [start, end], bounds included.
func (f *TimeField) IsBetween(start, end time.Time) *TimeField {
	f.check(constraint.New("Between", constraint.P("start", start), constraint.P("end", end)), func(v time.Time) bool {
		return (v.Equal(start) || v.After(start)) && (v.Equal(end) || v.Before(end))
	})
	return f
}
