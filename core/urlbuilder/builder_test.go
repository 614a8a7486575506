package urlbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/restbind/core/urlbuilder"
)

func TestNewAndString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain", path: "/users/42", want: "/users/42"},
		{name: "no leading slash", path: "users/42", want: "/users/42"},
		{name: "trailing slash dropped", path: "/users/42/", want: "/users/42"},
		{name: "repeated slashes collapsed", path: "//users///42", want: "/users/42"},
		{name: "empty is root", path: "", want: "/"},
		{name: "template passes through", path: "/users/{id}", want: "/users/{id}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, urlbuilder.New(tt.path).String())
		})
	}
}

func TestResolveTemplate(t *testing.T) {
	t.Parallel()

	route := urlbuilder.New("/users/{id}/orders/{order}")

	resolved := route.ResolveTemplate("id", "42").ResolveTemplate("order", "a-7")
	assert.Equal(t, "/users/42/orders/a-7", resolved.String())

	// Partial resolution leaves the remaining template in place.
	partial := route.ResolveTemplate("id", "42")
	assert.Equal(t, "/users/42/orders/{order}", partial.String())
	assert.Equal(t, []string{"order"}, partial.Unresolved())

	// No values leaves the template untouched for a later pass.
	assert.Same(t, route, route.ResolveTemplate("id"))

	// Every occurrence of the name is replaced.
	echo := urlbuilder.New("/{v}/copy/{v}").ResolveTemplate("v", "x")
	assert.Equal(t, "/x/copy/x", echo.String())
}

func TestResolveTemplateEscapesValues(t *testing.T) {
	t.Parallel()

	b := urlbuilder.New("/files/{name}")

	assert.Equal(t, "/files/a%20b", b.ResolveTemplate("name", "a b").String())
	assert.Equal(t, "/files/a%2Fb", b.ResolveTemplate("name", "a/b").String(),
		"a slash in a value must not create a new segment")
}

func TestMatrixParam(t *testing.T) {
	t.Parallel()

	b := urlbuilder.New("/books/fiction").
		MatrixParam("author", "doyle").
		MatrixParam("lang", "en", "de")
	assert.Equal(t, "/books/fiction;author=doyle;lang=en;lang=de", b.String())

	flag := urlbuilder.New("/books").MatrixParam("all")
	assert.Equal(t, "/books;all", flag.String())

	root := (&urlbuilder.Builder{}).MatrixParam("k", "v")
	assert.Equal(t, "/;k=v", root.String())
}

func TestBuilderIsImmutable(t *testing.T) {
	t.Parallel()

	route := urlbuilder.New("/users/{id}")

	a := route.ResolveTemplate("id", "1").MatrixParam("x", "1")
	b := route.ResolveTemplate("id", "2")

	assert.Equal(t, "/users/{id}", route.String())
	assert.Equal(t, "/users/1;x=1", a.String())
	assert.Equal(t, "/users/2", b.String())
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	b := urlbuilder.New("/a/{one}/{two}/b")
	assert.Equal(t, []string{"one", "two"}, b.Unresolved())
	assert.Empty(t, b.ResolveTemplate("one", "1").ResolveTemplate("two", "2").Unresolved())
}

func TestURL(t *testing.T) {
	t.Parallel()

	u, err := urlbuilder.New("/users/{id}").ResolveTemplate("id", "42").URL()
	require.NoError(t, err)
	assert.Equal(t, "/users/42", u.Path)
	assert.Empty(t, u.RawQuery)
}
