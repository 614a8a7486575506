// Package urlbuilder provides an immutable, chain-style builder for the
// path portion of an outgoing request URL. It understands {name} template
// segments and matrix parameters, which makes it the natural target for
// path- and matrix-tagged parameter structs bound by core/binder.
//
// A route template is built once and resolved per request:
//
//	route := urlbuilder.New("/users/{id}/orders/{order}")
//
//	path := route.
//		ResolveTemplate("id", "42").
//		ResolveTemplate("order", "a-7").
//		MatrixParam("expand", "items", "totals")
//
//	path.String() // "/users/42/orders/a-7;expand=items;expand=totals"
//
// Every method returns a new Builder; the original route template is never
// modified and can be shared freely across goroutines. Resolved values are
// percent-escaped as path segments, so `ResolveTemplate("id", "a/b")`
// produces "a%2Fb" rather than an extra segment. Unresolved reports
// templates that still need values before the path is usable.
package urlbuilder
