package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var (
	stringerType      = reflect.TypeFor[fmt.Stringer]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// wireValues converts a field's current value to its wire strings.
// Slices and arrays produce one string per element for repeated parameters,
// []byte is treated as a single opaque value, and a nil pointer produces an
// empty slice so the setter can decide how to handle absence.
func wireValues(v reflect.Value) ([]string, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	// Self-serializing slice types (net.IP and friends) are single values.
	if s, ok, err := marshalText(v); ok {
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}

	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return []string{string(v.Bytes())}, nil
		}
		out := make([]string, 0, v.Len())
		for i := range v.Len() {
			s, err := wireString(v.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	s, err := wireString(v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

// wireString converts a single scalar value to its wire string.
func wireString(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}

	if s, ok, err := marshalText(v); ok {
		return s, err
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("cannot represent %s value on the wire", v.Type())
	}
}

// marshalText handles types carrying their own textual representation
// (encoding.TextMarshaler, fmt.Stringer), copying the value to a pointer
// when the method set lives on the pointer receiver. TextMarshaler wins
// over Stringer so types like time.Time serialize in their canonical wire
// form rather than their display form.
func marshalText(v reflect.Value) (string, bool, error) {
	t := v.Type()
	if !t.Implements(textMarshalerType) && !t.Implements(stringerType) {
		pt := reflect.PointerTo(t)
		if !pt.Implements(textMarshalerType) && !pt.Implements(stringerType) {
			return "", false, nil
		}
		pv := reflect.New(t)
		pv.Elem().Set(v)
		v = pv
	}

	switch x := v.Interface().(type) {
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		return string(b), true, err
	case fmt.Stringer:
		return x.String(), true, nil
	}
	return "", false, nil
}

// hasTextRepresentation reports whether t (or *t) serializes itself.
func hasTextRepresentation(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return t.Implements(textMarshalerType) || t.Implements(stringerType) ||
		pt.Implements(textMarshalerType) || pt.Implements(stringerType)
}

// validateWireType is the build-time counterpart of wireValues: it rejects
// field types the coercion above cannot represent, so misconfiguration
// fails at registration instead of on the first request.
func validateWireType(t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if hasTextRepresentation(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		return validateWireType(t.Elem())
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Bool:
		return nil
	default:
		return fmt.Errorf("no wire representation for %s", t)
	}
}
