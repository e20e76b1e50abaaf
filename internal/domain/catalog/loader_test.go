package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context) ([]Product, error)

func (f fetcherFunc) FetchProducts(ctx context.Context) ([]Product, error) {
	return f(ctx)
}

func TestLoaderServesFallbackBeforeFirstRefresh(t *testing.T) {
	fallback := FallbackProducts()
	l := NewLoader(fetcherFunc(func(context.Context) ([]Product, error) {
		return nil, errors.New("unreachable")
	}), fallback, nil)

	assert.Equal(t, fallback, l.Products())
}

func TestLoaderRefreshFallsBackOnError(t *testing.T) {
	fallback := []Product{{ID: "1", Name: "Netflix Premium", Image: "x"}}
	l := NewLoader(fetcherFunc(func(context.Context) ([]Product, error) {
		return nil, errors.New("store down")
	}), fallback, nil)

	got := l.Refresh(context.Background())
	assert.Equal(t, fallback, got)
}

func TestLoaderRefreshReconciles(t *testing.T) {
	fallback := []Product{{ID: "1", Name: "Netflix Premium", Image: "https://img/fb.webp"}}
	remote := []Product{{ID: "1", Name: "Netflix Premium", Price: 69000, Image: ""}}
	l := NewLoader(fetcherFunc(func(context.Context) ([]Product, error) {
		return remote, nil
	}), fallback, nil)

	got := l.Refresh(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, int64(69000), got[0].Price)
	assert.Equal(t, "https://img/fb.webp", got[0].Image)
	assert.Equal(t, got, l.Products())
}

func TestLoaderDiscardsStaleResponse(t *testing.T) {
	fallback := []Product{{ID: "1", Image: "x"}}

	slowRelease := make(chan struct{})
	slowStarted := make(chan struct{})

	var calls atomic.Int32
	l := NewLoader(fetcherFunc(func(context.Context) ([]Product, error) {
		if calls.Add(1) == 1 {
			close(slowStarted)
			<-slowRelease
			return []Product{{ID: "old", Image: "x"}}, nil
		}
		return []Product{{ID: "new", Image: "x"}}, nil
	}), fallback, nil)

	done := make(chan []Product)
	go func() {
		done <- l.Refresh(context.Background()) // issued first, resolves last
	}()
	<-slowStarted

	fresh := l.Refresh(context.Background())
	require.Len(t, fresh, 1)
	assert.Equal(t, "new", fresh[0].ID)

	close(slowRelease)
	<-done

	// The slower, older refresh must not overwrite the newer snapshot.
	got := l.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}
