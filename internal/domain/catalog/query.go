// internal/domain/catalog/query.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/your-org/digistore-backend/internal/pkg/slug"
)

// SortKey selects the ordering applied at the end of the query pipeline.
type SortKey string

const (
	SortPopular   SortKey = "popular" // Default: sold count descending
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
)

// QueryRequest describes a storefront catalog query.
type QueryRequest struct {
	Category Category `form:"category"`
	PriceMax int64    `form:"price_max"`
	Search   string   `form:"search"`
	Sort     SortKey  `form:"sort,default=popular"`
}

// Query filters and orders products. The stages run in a fixed order:
// category, free-text search, price ceiling, then a stable sort. Reordering
// the stages changes results (a search can only narrow the category subset,
// never relax it).
func Query(products []Product, req QueryRequest) []Product {
	out := make([]Product, 0, len(products))

	if req.Category == "" || req.Category == CategoryAll {
		out = append(out, products...)
	} else {
		for _, p := range products {
			if p.Category == req.Category {
				out = append(out, p)
			}
		}
	}

	if tokens := slug.Tokens(req.Search); len(tokens) > 0 {
		matched := out[:0]
		for _, p := range out {
			if matchesAll(Haystack(p), tokens) {
				matched = append(matched, p)
			}
		}
		out = matched
	}

	if req.PriceMax > 0 {
		inRange := out[:0]
		for _, p := range out {
			if p.Price >= 0 && p.Price <= req.PriceMax {
				inRange = append(inRange, p)
			}
		}
		out = inRange
	}

	sortProducts(out, req.Sort)
	return out
}

// Haystack builds the normalized text blob a product is searched against.
func Haystack(p Product) string {
	return slug.Make(strings.Join([]string{p.Name, p.Description, string(p.Category)}, " "))
}

// matchesAll implements conjunctive token search: every token must appear
// as a substring of the haystack.
func matchesAll(haystack string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		c := collate.New(language.Vietnamese)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNewest:
		// Two-bucket partition on the IsNew flag, relative order kept
		// inside each bucket. Not a recency sort.
		sort.SliceStable(products, func(i, j int) bool {
			return !products[i].IsNew && products[j].IsNew
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Sold > products[j].Sold
		})
	}
}
