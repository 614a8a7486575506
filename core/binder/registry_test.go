package binder_test

import (
	"net/url"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/restbind/core/binder"
)

func TestForMemoizesBinder(t *testing.T) {
	t.Parallel()

	type listParams struct {
		Page int `query:"page"`
	}

	first, err := binder.ForType[listParams]()
	require.NoError(t, err)
	second, err := binder.ForType[listParams]()
	require.NoError(t, err)
	assert.Same(t, first, second)

	// Pointer types normalize to the same cache entry.
	third, err := binder.For(reflect.TypeFor[*listParams]())
	require.NoError(t, err)
	assert.Same(t, first, third)
}

func TestForCachesBuildError(t *testing.T) {
	t.Parallel()

	type broken struct {
		C chan int `query:"c"`
	}

	_, err := binder.ForType[broken]()
	require.ErrorIs(t, err, binder.ErrUnsupportedFieldType)

	_, again := binder.ForType[broken]()
	require.ErrorIs(t, again, binder.ErrUnsupportedFieldType)
	assert.Equal(t, err.Error(), again.Error())
}

func TestForNilType(t *testing.T) {
	t.Parallel()

	_, err := binder.For(nil)
	require.ErrorIs(t, err, binder.ErrInvalidTarget)
}

func TestForConcurrent(t *testing.T) {
	t.Parallel()

	type searchParams struct {
		Q    string   `query:"q"`
		Tags []string `query:"tags"`
	}

	const workers = 32
	binders := make([]*binder.StructBinder, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := binder.ForType[searchParams]()
			assert.NoError(t, err)
			binders[i] = b

			// Shared binders must apply concurrently without coordination.
			q, err := b.ApplyQuery(url.Values{}, searchParams{Q: "x"})
			assert.NoError(t, err)
			assert.Equal(t, "x", q.Get("q"))
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, binders[0], binders[i])
	}
}
