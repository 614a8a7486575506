package binder

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldBinding describes one tagged struct field: the request part it
// targets, the declared parameter name, and the field's location within the
// struct. Bindings are discovered once per type and replayed against
// concrete instances; they never reference a specific instance.
type FieldBinding struct {
	Kind Kind
	Name string

	field reflect.StructField
}

// FieldName returns the identifier of the underlying struct field.
func (fb FieldBinding) FieldName() string {
	return fb.field.Name
}

// scanFields collects bindings for a single kind in declaration order.
// A field tagged with a different kind is ignored here; it is picked up by
// that kind's own scan, so multi-kind fields yield independent bindings.
func scanFields(t reflect.Type, kind Kind) ([]FieldBinding, error) {
	var bindings []FieldBinding
	for i := range t.NumField() {
		f := t.Field(i)
		name, ok := parseParamTag(f, kind)
		if !ok {
			continue
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("%w: field %s is unexported but tagged %q", ErrInvalidTarget, f.Name, kind.Tag())
		}
		if err := validateWireType(f.Type); err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrUnsupportedFieldType, f.Name, err)
		}
		bindings = append(bindings, FieldBinding{Kind: kind, Name: name, field: f})
	}
	return bindings, nil
}

// parseParamTag extracts the parameter name for the given kind. The second
// return reports whether the field participates in that kind at all.
// A tag value of "-" skips the field, an empty name defaults to the field
// identifier, and options after a comma are ignored.
func parseParamTag(f reflect.StructField, kind Kind) (string, bool) {
	tag, ok := f.Tag.Lookup(kind.Tag())
	if !ok || tag == "-" {
		return "", false
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name, true
	}
	return name, true
}
