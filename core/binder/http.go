package binder

import (
	"net/http"
	"net/url"
)

// Apply operations for the standard net/http request-part containers.
// All four mutate the passed container in place and return it so calls can
// be chained by the request-assembly layer. Absent values (a nil pointer
// field) are skipped: none of these containers can usefully represent a
// parameter that is present but has no value.

// ApplyHeaders writes header-tagged fields into h and returns it. Values
// are added, not replaced, so repeated names accumulate in binding order
// under the canonical MIME header key.
func (b *StructBinder) ApplyHeaders(h http.Header, instance any) (http.Header, error) {
	err := b.Apply(KindHeader, instance, func(name string, values []string) {
		for _, v := range values {
			h.Add(name, v)
		}
	})
	return h, err
}

// ApplyCookies writes cookie-tagged fields into c and returns it. Cookies
// are single-valued: the first wire value is used, and a later binding with
// the same name overwrites an earlier one.
func (b *StructBinder) ApplyCookies(c map[string]string, instance any) (map[string]string, error) {
	err := b.Apply(KindCookie, instance, func(name string, values []string) {
		if len(values) == 0 {
			return
		}
		c[name] = values[0]
	})
	return c, err
}

// ApplyQuery writes query-tagged fields into q and returns it. Slice fields
// become repeated values under the same key.
func (b *StructBinder) ApplyQuery(q url.Values, instance any) (url.Values, error) {
	err := b.Apply(KindQuery, instance, func(name string, values []string) {
		for _, v := range values {
			q.Add(name, v)
		}
	})
	return q, err
}

// ApplyForm writes form-tagged fields into f and returns it. The result is
// the url-encoded form body accumulated by the request-assembly layer.
func (b *StructBinder) ApplyForm(f url.Values, instance any) (url.Values, error) {
	err := b.Apply(KindForm, instance, func(name string, values []string) {
		for _, v := range values {
			f.Add(name, v)
		}
	})
	return f, err
}
