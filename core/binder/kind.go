package binder

// Kind identifies the request part a tagged field is bound to.
type Kind uint8

// Supported parameter kinds, one per request part. The set is closed:
// extending it means adding a new apply operation with the same shape.
const (
	KindPath Kind = iota
	KindHeader
	KindCookie
	KindQuery
	KindMatrix
	KindForm
)

// kinds lists the parameter kinds in scan order. Binding discovery iterates
// this slice kind by kind, so the order is part of the binder's observable
// application order.
var kinds = [...]Kind{KindPath, KindHeader, KindCookie, KindQuery, KindMatrix, KindForm}

var kindTags = map[Kind]string{
	KindPath:   "path",
	KindHeader: "header",
	KindCookie: "cookie",
	KindQuery:  "query",
	KindMatrix: "matrix",
	KindForm:   "form",
}

// Tag returns the struct tag key for the kind, e.g. "query" for KindQuery.
func (k Kind) Tag() string { return kindTags[k] }

func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "unknown"
}
