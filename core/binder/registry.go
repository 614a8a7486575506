package binder

import (
	"fmt"
	"reflect"
	"sync"
)

// The package-level registry memoizes one StructBinder per struct type for
// the lifetime of the process. Bind itself stays a pure function of the
// type; the registry is a convenience layered on top for callers that bind
// the same parameter structs on every request. Build errors are cached too,
// so a misconfigured type fails consistently instead of retrying the scan.
var registry = struct {
	mu      sync.RWMutex
	binders map[reflect.Type]*StructBinder
	errs    map[reflect.Type]error
}{
	binders: make(map[reflect.Type]*StructBinder),
	errs:    make(map[reflect.Type]error),
}

// For returns the memoized binder for t, building it on first use.
// Safe for concurrent use; repeat calls return the same *StructBinder.
func For(t reflect.Type) (*StructBinder, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidTarget)
	}

	registry.mu.RLock()
	b, ok := registry.binders[t]
	err, failed := registry.errs[t]
	registry.mu.RUnlock()
	if ok {
		return b, nil
	}
	if failed {
		return nil, err
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if b, ok := registry.binders[t]; ok {
		return b, nil
	}
	if err, ok := registry.errs[t]; ok {
		return nil, err
	}

	b, err = Bind(t)
	if err != nil {
		registry.errs[t] = err
		return nil, err
	}
	registry.binders[t] = b
	return b, nil
}

// ForType returns the memoized binder for the type parameter T.
func ForType[T any]() (*StructBinder, error) {
	return For(reflect.TypeFor[T]())
}
