// internal/domain/catalog/loader.go
package catalog

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fetcher retrieves the product collection from the hosted store.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Loader owns the storefront's reconciled product snapshot. Every refresh
// fetches from the hosted store and merges the result with the fallback
// dataset, so consumers always get a usable list even when the store is
// down or empty.
type Loader struct {
	mu       sync.Mutex
	gen      uint64
	fetcher  Fetcher
	fallback []Product
	products []Product
	logger   *logrus.Logger
}

// NewLoader creates a loader primed with the fallback dataset, so Products
// is usable before the first refresh completes.
func NewLoader(fetcher Fetcher, fallback []Product, logger *logrus.Logger) *Loader {
	return &Loader{
		fetcher:  fetcher,
		fallback: fallback,
		products: fallback,
		logger:   logger,
	}
}

// Refresh fetches the product collection and installs the reconciled result
// as the current snapshot. Concurrent refreshes are resolved with a
// generation counter: a response that lands after a newer refresh has been
// issued is discarded instead of clobbering fresher data.
func (l *Loader) Refresh(ctx context.Context) []Product {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	remote, err := l.fetcher.FetchProducts(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		// A newer refresh owns the snapshot now.
		return l.products
	}

	if err != nil {
		if l.logger != nil {
			l.logger.WithError(err).Warn("product fetch failed, serving fallback dataset")
		}
		remote = nil
	}

	l.products = Reconcile(remote, l.fallback)
	return l.products
}

// Products returns the current reconciled snapshot.
func (l *Loader) Products() []Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.products
}

// FindBySlug looks a product up in the current snapshot by its slug.
func (l *Loader) FindBySlug(s string) (*Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.products {
		if l.products[i].Slug == s {
			p := l.products[i]
			return &p, true
		}
	}
	return nil, false
}

// FindByID looks a product up in the current snapshot by string-coerced id.
func (l *Loader) FindByID(id string) (*Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	want := coerceID(id)
	for i := range l.products {
		if coerceID(l.products[i].ID) == want {
			p := l.products[i]
			return &p, true
		}
	}
	return nil, false
}
