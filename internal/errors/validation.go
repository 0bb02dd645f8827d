package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// fieldMetaPrefix prefixes field names in the metadata of a validation error
const fieldMetaPrefix = "field."

// ValidationBuilder collects field problems. Build returns nil when there
// are none, otherwise one InvalidArgument error naming every field.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors reports whether any field has a problem
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns the collected problems as an InvalidArgument error, fields
// in name order
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := slices.Sorted(maps.Keys(vb.fields))
	parts := make([]string, 0, len(names))
	err := InvalidArgument("")
	for _, name := range names {
		joined := strings.Join(vb.fields[name], ", ")
		parts = append(parts, fmt.Sprintf("%s: %s", name, joined))
		err.WithMeta(fieldMetaPrefix+name, joined)
	}
	err.Message = "validation failed: " + strings.Join(parts, "; ")
	return err
}

// ValidateRequired flags a blank string field
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateExactlyOne flags a group of alternative fields unless exactly one
// of them is set. fields maps each field name to its value.
func ValidateExactlyOne(group string, fields map[string]string, vb *ValidationBuilder) {
	var set []string
	for name, value := range fields {
		if strings.TrimSpace(value) != "" {
			set = append(set, name)
		}
	}

	switch len(set) {
	case 1:
		return
	case 0:
		vb.Fieldf(group, "one of %s is required", strings.Join(slices.Sorted(maps.Keys(fields)), ", "))
	default:
		slices.Sort(set)
		vb.Fieldf(group, "only one of %s may be set", strings.Join(set, ", "))
	}
}
