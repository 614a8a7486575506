package binder

import (
	"fmt"
	"reflect"
)

// Setter receives one resolved parameter: the declared name and the field's
// wire values. Each apply operation supplies its own setter, so the policy
// for absent values (an empty values slice) belongs to the setter, which is
// invoked even when the field holds a nil pointer.
type Setter func(name string, values []string)

// StructBinder maps the tagged fields of one struct type onto outgoing
// request parts. It is built once per type, immutable afterwards, and safe
// for unsynchronized concurrent use across in-flight requests.
type StructBinder struct {
	typ      reflect.Type
	bindings []FieldBinding
}

// Bind builds a StructBinder for t, which must be a struct type or a
// pointer to one. Fields are discovered kind by kind in a fixed order
// (path, header, cookie, query, matrix, form) and in declaration order
// within each kind, so repeated calls over the same type produce
// structurally identical binders.
//
// Bind fails when t is not a struct type, when a tagged field is
// unexported, or when a tagged field's type has no wire representation.
// Any such error must fail client registration, not the request.
func Bind(t reflect.Type) (*StructBinder, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidTarget)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", ErrInvalidTarget, t)
	}

	var bindings []FieldBinding
	for _, kind := range kinds {
		kb, err := scanFields(t, kind)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, kb...)
	}

	return &StructBinder{typ: t, bindings: bindings}, nil
}

// BindFor builds a StructBinder for the type parameter T.
func BindFor[T any]() (*StructBinder, error) {
	return Bind(reflect.TypeFor[T]())
}

// Type returns the struct type the binder was built for.
func (b *StructBinder) Type() reflect.Type { return b.typ }

// Bindings returns the bindings for one kind, in application order.
func (b *StructBinder) Bindings(kind Kind) []FieldBinding {
	var out []FieldBinding
	for _, fb := range b.bindings {
		if fb.Kind == kind {
			out = append(out, fb)
		}
	}
	return out
}

// Len returns the total number of discovered bindings across all kinds.
func (b *StructBinder) Len() int { return len(b.bindings) }

// Apply resolves every binding of the given kind against instance and hands
// (name, values) to set, in binding order. The binder performs no wire
// validation beyond string coercion; what the values mean is up to the
// request-part container behind the setter.
//
// An error means the instance could not be read (wrong type, nil, or a
// field coercion failure). Values already handed to the setter are not
// rolled back; the caller is expected to abandon the request.
func (b *StructBinder) Apply(kind Kind, instance any, set Setter) error {
	if _, ok := kindTags[kind]; !ok {
		return fmt.Errorf("%w: kind(%d)", ErrUnsupportedKind, kind)
	}

	v, err := b.instanceValue(instance)
	if err != nil {
		return err
	}

	for _, fb := range b.bindings {
		if fb.Kind != kind {
			continue
		}
		values, err := wireValues(v.FieldByIndex(fb.field.Index))
		if err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrFieldAccess, fb.field.Name, err)
		}
		set(fb.Name, values)
	}
	return nil
}

// instanceValue resolves the caller-supplied instance to the struct value
// the binder was built for. Pointers are dereferenced so callers may pass
// either the struct or a pointer to it.
func (b *StructBinder) instanceValue(instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil instance", ErrFieldAccess)
	}
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s instance", ErrFieldAccess, v.Type())
		}
		v = v.Elem()
	}
	if v.Type() != b.typ {
		return reflect.Value{}, fmt.Errorf("%w: instance type %s does not match binder type %s", ErrFieldAccess, v.Type(), b.typ)
	}
	return v, nil
}

// PathTarget is the chain-style container for path and matrix parameters.
// Implementations may be immutable, returning an updated copy from each
// call like urlbuilder.Builder, or mutable, returning the receiver.
type PathTarget[T any] interface {
	ResolveTemplate(name string, values ...string) T
	MatrixParam(name string, values ...string) T
}

// ApplyPath folds every path-tagged field over target, threading the
// returned builder through each step, and returns the final builder.
func ApplyPath[T PathTarget[T]](b *StructBinder, target T, instance any) (T, error) {
	err := b.Apply(KindPath, instance, func(name string, values []string) {
		target = target.ResolveTemplate(name, values...)
	})
	return target, err
}

// ApplyMatrix folds every matrix-tagged field over target, appending each
// as a matrix parameter on the target's current segment.
func ApplyMatrix[T PathTarget[T]](b *StructBinder, target T, instance any) (T, error) {
	err := b.Apply(KindMatrix, instance, func(name string, values []string) {
		target = target.MatrixParam(name, values...)
	})
	return target, err
}
