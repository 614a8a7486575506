package binder

import "errors"

// Error variables define binding failures. The build-time errors indicate a
// misconfigured parameter struct and must fail client registration rather
// than surface on the first request.
var (
	// ErrInvalidTarget indicates the bound type is not a struct type, or
	// that a tagged field is unreadable (e.g. unexported).
	ErrInvalidTarget = errors.New("invalid binding target")

	// ErrUnsupportedFieldType indicates a tagged field whose type has no
	// wire representation (chan, func, map, plain struct, ...).
	ErrUnsupportedFieldType = errors.New("unsupported field type")

	// ErrUnsupportedKind indicates an Apply call with a Kind outside the
	// supported set.
	ErrUnsupportedKind = errors.New("unsupported parameter kind")

	// ErrFieldAccess indicates a field value could not be read from the
	// supplied instance during an apply operation. It signals a structural
	// defect (wrong instance type, nil instance), never a request
	// condition, and must abort the request being assembled.
	ErrFieldAccess = errors.New("failed to access field value")
)
