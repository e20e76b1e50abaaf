// internal/domain/pricing/resolver.go
package pricing

import (
	"math"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
)

// Quote is the effective price the storefront displays and charges.
type Quote struct {
	Price           int64 `json:"price"`
	OriginalPrice   int64 `json:"original_price"`
	DiscountPercent int   `json:"discount_percent"`
}

// Resolve computes the effective unit price for a product. Precedence, the
// highest layer winning: an active flash sale overrides a selected variant,
// which overrides the product's base prices. A flash sale is a time-boxed
// promotion on the catalog price; the flash-sale purchase flow never offers
// variant selection, so a sale beats a variant outright if a caller ever
// passes both.
func Resolve(product catalog.Product, variant *catalog.Variant, sale *flashsale.FlashSale) Quote {
	if sale != nil {
		price := flashsale.SalePrice(product.Price, sale.DiscountPercent)
		return quote(price, product.Price)
	}

	if variant != nil {
		return quote(variant.Price, variant.OriginalPrice)
	}

	return quote(product.Price, product.OriginalPrice)
}

func quote(price, originalPrice int64) Quote {
	return Quote{
		Price:           price,
		OriginalPrice:   originalPrice,
		DiscountPercent: discountPercent(price, originalPrice),
	}
}

// discountPercent is round((original-price)/original*100), floored at 0
// when the original price does not exceed the effective price.
func discountPercent(price, originalPrice int64) int {
	if originalPrice <= 0 || originalPrice <= price {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}
