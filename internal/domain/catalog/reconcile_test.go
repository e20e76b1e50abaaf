package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileFillsMissingImage(t *testing.T) {
	remote := []Product{{ID: "1", Name: "Netflix Premium", Image: ""}}
	fallback := []Product{{ID: "1", Name: "Netflix Premium", Image: "https://img/netflix.webp"}}

	got := Reconcile(remote, fallback)

	assert.Len(t, got, 1)
	assert.Equal(t, "https://img/netflix.webp", got[0].Image)
}

func TestReconcileEmptyRemoteReturnsFallback(t *testing.T) {
	fallback := FallbackProducts()

	assert.Equal(t, fallback, Reconcile(nil, fallback))
	assert.Equal(t, fallback, Reconcile([]Product{}, fallback))
}

func TestReconcileKeepsRemoteImage(t *testing.T) {
	remote := []Product{{ID: "1", Image: "https://img/remote.webp"}}
	fallback := []Product{{ID: "1", Image: "https://img/fallback.webp"}}

	got := Reconcile(remote, fallback)
	assert.Equal(t, "https://img/remote.webp", got[0].Image)
}

func TestReconcilePlaceholderWhenNoFallbackMatch(t *testing.T) {
	remote := []Product{{ID: "99", Image: "  "}}
	fallback := []Product{{ID: "1", Image: "https://img/fallback.webp"}}

	got := Reconcile(remote, fallback)
	assert.Equal(t, PlaceholderImage, got[0].Image)
}

func TestReconcileStringCoercedIDMatch(t *testing.T) {
	// The hosted store serializes some ids as bare numbers, which survive
	// decoding as "01"-style or padded strings depending on the source.
	remote := []Product{{ID: "01", Image: ""}, {ID: " 2 ", Image: ""}}
	fallback := []Product{
		{ID: "1", Image: "https://img/one.webp"},
		{ID: "2", Image: "https://img/two.webp"},
	}

	got := Reconcile(remote, fallback)
	assert.Equal(t, "https://img/one.webp", got[0].Image)
	assert.Equal(t, "https://img/two.webp", got[1].Image)
}

func TestReconcileIdempotent(t *testing.T) {
	remote := []Product{
		{ID: "1", Image: ""},
		{ID: "2", Image: "https://img/two.webp"},
		{ID: "99", Image: ""},
	}
	fallback := []Product{{ID: "1", Image: "https://img/one.webp"}}

	once := Reconcile(remote, fallback)
	twice := Reconcile(once, fallback)
	assert.Equal(t, once, twice)
}

func TestCoerceID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"01", "1"},
		{" 7 ", "7"},
		{"0", "0"},
		{"000", "0"},
		{"abc", "abc"},
		{"0abc", "0abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceID(tt.in), "coerceID(%q)", tt.in)
	}
}
