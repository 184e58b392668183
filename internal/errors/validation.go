package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError lists the failing fields of a Config
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists fields in name order so messages are stable across runs
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", name, strings.Join(v.Fields[name], ", "))
	}
	return b.String()
}

// ValidationBuilder accumulates field failures and builds one
// InvalidArgument error, or nil when every check passed
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a failure for field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted failure for field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing dependency or value
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing failed. The InvalidArgument error carries
// the field map under the "validation_errors" meta key.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	ve := &ValidationError{Fields: vb.fields}
	return InvalidArgument(ve.Error()).WithMeta("validation_errors", ve.Fields)
}

// ValidateRequired fails blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMin fails values below minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}

// ValidateEnum fails values outside allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
