// Package binder maps tagged struct fields into the parts of an outgoing
// HTTP request. It is the parameter-holder half of a generated REST client:
// a struct declares where each of its fields belongs (URL path, headers,
// cookies, query string, matrix parameters, form body), the binder
// discovers that mapping once per type, and the request-assembly layer
// replays it against concrete values on every call.
//
// # Features
//
//   - Six parameter kinds: path, header, cookie, query, matrix, form
//   - One reflection scan per struct type, replayed per request
//   - Immutable binders safe for concurrent use without locking
//   - Chain-style path/matrix targets and in-place map-like containers
//   - Wire coercion for basic types, slices, pointers, fmt.Stringer
//     and encoding.TextMarshaler values
//   - Misconfigured structs fail at registration, not on the first request
//   - Process-wide type registry for binder memoization
//
// # Usage
//
// Declare a parameter struct with one tag per request part:
//
//	type GetUserParams struct {
//		UserID  uuid.UUID `path:"id"`
//		Expand  []string  `query:"expand"`
//		TraceID string    `header:"X-Trace"`
//		Session string    `cookie:"session"`
//		Filter  string    `matrix:"filter"`
//		Note    string    `form:"note"`
//		Ignored string    `query:"-"`
//	}
//
// Build the binder once, typically while registering the client interface:
//
//	b, err := binder.BindFor[GetUserParams]()
//	if err != nil {
//		// misconfigured parameter struct; fail registration
//	}
//
// Per request, apply each operation against the instance and the containers
// the request assembler owns:
//
//	params := GetUserParams{UserID: id, Expand: []string{"roles"}}
//
//	target, err := binder.ApplyPath(b, urlbuilder.New("/users/{id}"), params)
//	headers, err := b.ApplyHeaders(http.Header{}, params)
//	cookies, err := b.ApplyCookies(map[string]string{}, params)
//	query, err := b.ApplyQuery(url.Values{}, params)
//	target, err = binder.ApplyMatrix(b, target, params)
//	form, err := b.ApplyForm(url.Values{}, params)
//
// Operations for a kind with no matching bindings leave the container
// untouched, so the assembler can call all six unconditionally.
//
// # Tag syntax
//
// Each kind uses its own tag key. The tag value is the parameter name;
// an empty value defaults to the field identifier, "-" excludes the field
// from that kind, and options after a comma are ignored:
//
//	Field string `query:"q"`           // query parameter "q"
//	Field string `query:""`            // query parameter "Field"
//	Field string `query:"-"`           // not bound
//	Field string `query:"q,omitempty"` // query parameter "q"
//
// A field may carry tags for several kinds at once; each tag produces an
// independent binding, so the value is applied to every tagged part.
//
// # Wire coercion
//
// Field values become strings with the obvious strconv formatting. Types
// implementing encoding.TextMarshaler or fmt.Stringer serialize themselves
// (TextMarshaler preferred); slices produce one wire value per element;
// []byte is a single opaque value; nil pointers mean the parameter is
// absent. Absence policy belongs to the container setter: the generic
// Apply still invokes the setter with no values, while the net/http
// container helpers skip absent parameters.
//
// # Custom containers
//
// The generic Apply operation hands (name, values) pairs to any Setter, so
// containers outside net/http can be targeted without new binder code:
//
//	err := b.Apply(binder.KindHeader, params, func(name string, values []string) {
//		for _, v := range values {
//			req.AddHeader(name, v)
//		}
//	})
//
// Chain-style targets implement PathTarget; see the urlbuilder package for
// the builder used by generated clients.
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, binder.ErrInvalidTarget):
//		// not a struct type, or an unexported tagged field
//	case errors.Is(err, binder.ErrUnsupportedFieldType):
//		// tagged field type has no wire representation
//	case errors.Is(err, binder.ErrFieldAccess):
//		// instance could not be read during apply; abandon the request
//	}
//
// Build-time errors indicate a defective client definition and must fail
// registration. ErrFieldAccess at apply time indicates a programming error
// (wrong or nil instance), never a transient request condition; values
// already written to a container are not rolled back.
package binder
