// Package validation collects field level violations for request and fixture input.
package validation

import "strings"

// Violations maps a field name to a short machine readable reason.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}
