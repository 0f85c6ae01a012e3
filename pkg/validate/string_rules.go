package validate

import (
	"regexp"
	"slices"
	"strings"

	"github.com/go-veto/veto/pkg/constraint"
)

// StringField is the rule handle for string properties: presence, equality,
// content and size rules, with case-insensitive variants.
type StringField[V ~string] struct {
	field[V]
}

// String opens a rule chain for a string property. A nil value marks the
// property as absent.
func String[V ~string](c *Context, name string, value *V) *StringField[V] {
	return &StringField[V]{field[V]{ctx: c, name: name, value: value}}
}

func (f *StringField[V]) IsNull() *StringField[V] {
	f.isNull()
	return f
}

func (f *StringField[V]) IsNotNull() *StringField[V] {
	f.isNotNull()
	return f
}

func (f *StringField[V]) IsEqualTo(other V) *StringField[V] {
	f.check(constraint.New("Equals", constraint.P("other", other)), func(v V) bool {
		return v == other
	})
	return f
}

func (f *StringField[V]) IsNotEqualTo(other V) *StringField[V] {
	f.check(constraint.New("NotEquals", constraint.P("other", other)), func(v V) bool {
		return v != other
	})
	return f
}

// IsEqualToIgnoringCase checks equality under Unicode case folding.
func (f *StringField[V]) IsEqualToIgnoringCase(other V) *StringField[V] {
	f.check(constraint.New("EqualsIgnoringCase", constraint.P("other", other)), func(v V) bool {
		return strings.EqualFold(string(v), string(other))
	})
	return f
}

func (f *StringField[V]) IsIn(allowed ...V) *StringField[V] {
	f.check(constraint.New("In", constraint.P("allowed", allowed)), func(v V) bool {
		return slices.Contains(allowed, v)
	})
	return f
}

func (f *StringField[V]) IsNotIn(denied ...V) *StringField[V] {
	f.check(constraint.New("NotIn", constraint.P("denied", denied)), func(v V) bool {
		return !slices.Contains(denied, v)
	})
	return f
}

// IsEmpty checks that the string has no characters at all.
func (f *StringField[V]) IsEmpty() *StringField[V] {
	f.check(constraint.New("Empty"), func(v V) bool {
		return len(v) == 0
	})
	return f
}

// IsNotEmpty checks that the string has at least one character.
func (f *StringField[V]) IsNotEmpty() *StringField[V] {
	f.check(constraint.New("NotEmpty"), func(v V) bool {
		return len(v) > 0
	})
	return f
}

// IsBlank checks that the string contains nothing but whitespace.
func (f *StringField[V]) IsBlank() *StringField[V] {
	f.check(constraint.New("Blank"), func(v V) bool {
		return strings.TrimSpace(string(v)) == ""
	})
	return f
}

// IsNotBlank checks that the string contains at least one non-whitespace
// character.
func (f *StringField[V]) IsNotBlank() *StringField[V] {
	f.check(constraint.New("NotBlank"), func(v V) bool {
		return strings.TrimSpace(string(v)) != ""
	})
	return f
}

// Contains checks that the string contains substring.
func (f *StringField[V]) Contains(substring V) *StringField[V] {
	f.check(constraint.New("Contains", constraint.P("substring", substring)), func(v V) bool {
		return strings.Contains(string(v), string(substring))
	})
	return f
}

// ContainsIgnoringCase checks that the string contains substring regardless
// of case.
func (f *StringField[V]) ContainsIgnoringCase(substring V) *StringField[V] {
	f.check(constraint.New("ContainsIgnoringCase", constraint.P("substring", substring)), func(v V) bool {
		return strings.Contains(strings.ToLower(string(v)), strings.ToLower(string(substring)))
	})
	return f
}

// StartsWith checks that the string starts with prefix.
func (f *StringField[V]) StartsWith(prefix V) *StringField[V] {
	f.check(constraint.New("StartsWith", constraint.P("prefix", prefix)), func(v V) bool {
		return strings.HasPrefix(string(v), string(prefix))
	})
	return f
}

// EndsWith checks that the string ends with suffix.
func (f *StringField[V]) EndsWith(suffix V) *StringField[V] {
	f.check(constraint.New("EndsWith", constraint.P("suffix", suffix)), func(v V) bool {
		return strings.HasSuffix(string(v), string(suffix))
	})
	return f
}

// Matches checks that the string matches the given regular expression.
func (f *StringField[V]) Matches(re *regexp.Regexp) *StringField[V] {
	f.check(constraint.New("Matches", constraint.P("pattern", re.String())), func(v V) bool {
		return re.MatchString(string(v))
	})
	return f
}

// HasSize checks that the string's byte length lies in [min, max].
func (f *StringField[V]) HasSize(min, max int) *StringField[V] {
	f.check(constraint.New("Size", constraint.P("min", min), constraint.P("max", max)), func(v V) bool {
		return len(v) >= min && len(v) <= max
	})
	return f
}
