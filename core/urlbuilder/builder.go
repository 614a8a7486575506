package urlbuilder

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// Builder assembles the path portion of an outgoing request URL from
// template segments, resolved path parameters, and matrix parameters.
// It is immutable: every method returns a new Builder, so route templates
// can be shared across requests and resolved per call.
type Builder struct {
	segments []segment
}

type segment struct {
	// raw holds the segment text; unresolved templates appear as {name}.
	raw    string
	matrix []matrixParam
}

type matrixParam struct {
	name   string
	values []string
}

var templatePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// New creates a builder from a path that may contain {name} templates,
// e.g. "/users/{id}/orders".
func New(path string) *Builder {
	return (&Builder{}).Path(path)
}

// Path returns a builder with p appended. p may span several segments and
// contain templates; surrounding and repeated slashes are dropped.
func (b *Builder) Path(p string) *Builder {
	nb := b.clone()
	for _, s := range strings.Split(p, "/") {
		if s == "" {
			continue
		}
		nb.segments = append(nb.segments, segment{raw: s})
	}
	return nb
}

// ResolveTemplate returns a builder with every {name} occurrence replaced
// by the percent-escaped first value. With no values the template is left
// in place, so resolution may happen over several passes and the absence
// policy stays with the caller.
func (b *Builder) ResolveTemplate(name string, values ...string) *Builder {
	if len(values) == 0 {
		return b
	}
	nb := b.clone()
	placeholder := "{" + name + "}"
	replacement := url.PathEscape(values[0])
	for i := range nb.segments {
		nb.segments[i].raw = strings.ReplaceAll(nb.segments[i].raw, placeholder, replacement)
	}
	return nb
}

// MatrixParam returns a builder with a matrix parameter appended to the
// final segment, rendered as ";name=v" per value, or bare ";name" when
// called with no values.
func (b *Builder) MatrixParam(name string, values ...string) *Builder {
	nb := b.clone()
	if len(nb.segments) == 0 {
		nb.segments = append(nb.segments, segment{})
	}
	last := &nb.segments[len(nb.segments)-1]
	last.matrix = append(slices.Clone(last.matrix), matrixParam{name: name, values: slices.Clone(values)})
	return nb
}

// Unresolved returns the names of templates still present, in path order.
// An empty result means the path is ready to be rendered into a request.
func (b *Builder) Unresolved() []string {
	var names []string
	for _, s := range b.segments {
		for _, m := range templatePattern.FindAllStringSubmatch(s.raw, -1) {
			names = append(names, m[1])
		}
	}
	return names
}

// String renders the path. Resolved values arrive already escaped; literal
// segment text and unresolved templates pass through verbatim.
func (b *Builder) String() string {
	if len(b.segments) == 0 {
		return "/"
	}

	var sb strings.Builder
	for _, s := range b.segments {
		sb.WriteByte('/')
		sb.WriteString(s.raw)
		for _, m := range s.matrix {
			if len(m.values) == 0 {
				sb.WriteByte(';')
				sb.WriteString(url.PathEscape(m.name))
				continue
			}
			for _, v := range m.values {
				sb.WriteByte(';')
				sb.WriteString(url.PathEscape(m.name))
				sb.WriteByte('=')
				sb.WriteString(url.PathEscape(v))
			}
		}
	}
	return sb.String()
}

// URL parses the rendered path into a *url.URL, ready to be combined with
// a scheme and host by the transport layer.
func (b *Builder) URL() (*url.URL, error) {
	return url.Parse(b.String())
}

func (b *Builder) clone() *Builder {
	return &Builder{segments: slices.Clone(b.segments)}
}
