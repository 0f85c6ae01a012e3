package validate

import (
	"errors"
	"strings"

	"github.com/go-veto/veto/pkg/constraint"
)

// Violations is the aggregate validation failure: the full, deduplicated
// violation set of one validation run. It implements the error interface and
// is the only error the engine produces, always at the top level of Validate,
// never mid-traversal.
type Violations []constraint.Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Has reports whether a violation exists for the given property path.
func (vs Violations) Has(path string) bool {
	for _, v := range vs {
		if v.Path == path {
			return true
		}
	}
	return false
}

// Get returns the violation recorded for path. Within one validation run at
// most one violation exists per path.
func (vs Violations) Get(path string) (constraint.Violation, bool) {
	for _, v := range vs {
		if v.Path == path {
			return v, true
		}
	}
	return constraint.Violation{}, false
}

// Paths returns the distinct property paths in insertion order.
func (vs Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

// Equal reports set equality with other, ignoring order.
func (vs Violations) Equal(other Violations) bool {
	return vs.subsetOf(other) && other.subsetOf(vs)
}

func (vs Violations) subsetOf(other Violations) bool {
	for _, v := range vs {
		found := false
		for _, o := range other {
			if v.Equal(o) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Extract returns the Violations carried by err, or nil when err is not a
// validation failure.
func Extract(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

// IsViolations reports whether err is (or wraps) a validation failure.
func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
