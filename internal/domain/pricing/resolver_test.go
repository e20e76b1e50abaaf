package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
)

func product() catalog.Product {
	return catalog.Product{ID: "1", Price: 100000, OriginalPrice: 400000}
}

func TestResolveBasePrice(t *testing.T) {
	q := Resolve(product(), nil, nil)

	assert.Equal(t, int64(100000), q.Price)
	assert.Equal(t, int64(400000), q.OriginalPrice)
	assert.Equal(t, 75, q.DiscountPercent)
}

func TestResolveVariantOverridesBase(t *testing.T) {
	variant := &catalog.Variant{Name: "1 Năm", Price: 649000, OriginalPrice: 1000000}
	q := Resolve(product(), variant, nil)

	assert.Equal(t, int64(649000), q.Price)
	assert.Equal(t, int64(1000000), q.OriginalPrice)
	assert.Equal(t, 35, q.DiscountPercent)
}

func TestResolveFlashSaleOverridesBase(t *testing.T) {
	sale := &flashsale.FlashSale{DiscountPercent: 50}
	q := Resolve(product(), nil, sale)

	// Original becomes the catalog price, not the catalog original.
	assert.Equal(t, int64(50000), q.Price)
	assert.Equal(t, int64(100000), q.OriginalPrice)
	assert.Equal(t, 50, q.DiscountPercent)
}

func TestResolveFlashSaleBeatsVariant(t *testing.T) {
	variant := &catalog.Variant{Name: "1 Năm", Price: 649000, OriginalPrice: 1000000}
	sale := &flashsale.FlashSale{DiscountPercent: 30}
	q := Resolve(product(), variant, sale)

	assert.Equal(t, int64(70000), q.Price)
	assert.Equal(t, int64(100000), q.OriginalPrice)
	assert.Equal(t, 30, q.DiscountPercent)
}

func TestResolveSalePriceFloors(t *testing.T) {
	p := catalog.Product{Price: 99999}
	sale := &flashsale.FlashSale{DiscountPercent: 33}
	q := Resolve(p, nil, sale)

	// floor(99999 * 0.67) = floor(66999.33)
	assert.Equal(t, int64(66999), q.Price)
}

func TestDiscountPercentFloorAtZero(t *testing.T) {
	q := Resolve(catalog.Product{Price: 100, OriginalPrice: 100}, nil, nil)
	assert.Equal(t, 0, q.DiscountPercent)

	q = Resolve(catalog.Product{Price: 100, OriginalPrice: 50}, nil, nil)
	assert.Equal(t, 0, q.DiscountPercent)

	q = Resolve(catalog.Product{Price: 100, OriginalPrice: 0}, nil, nil)
	assert.Equal(t, 0, q.DiscountPercent)
}
