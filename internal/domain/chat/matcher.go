// internal/domain/chat/matcher.go
package chat

import (
	"sort"
	"strings"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/pkg/slug"
)

// TemplateKey names the canned response the UI renders around the matched
// products.
type TemplateKey string

const (
	TemplateProductMatch  TemplateKey = "product_match"
	TemplateCategoryMatch TemplateKey = "category_match"
	TemplateCheapest      TemplateKey = "cheapest"
	TemplateUnknown       TemplateKey = "unknown"
)

// Reply is the classifier's answer: a response template plus ranked
// product suggestions.
type Reply struct {
	Template TemplateKey       `json:"template"`
	Products []catalog.Product `json:"products"`
}

const categoryLimit = 3

// categoryKeywords maps utterance substrings to categories. Order matters:
// the first keyword found wins, so broader terms sit below narrower ones.
var categoryKeywords = []struct {
	Keyword  string
	Category catalog.Category
}{
	{"chatgpt", catalog.CategoryAI},
	{"midjourney", catalog.CategoryAI},
	{"trí tuệ nhân tạo", catalog.CategoryAI},
	{"phim", catalog.CategoryEntertainment},
	{"nhạc", catalog.CategoryEntertainment},
	{"nhac", catalog.CategoryEntertainment},
	{"giải trí", catalog.CategoryEntertainment},
	{"xem", catalog.CategoryEntertainment},
	{"khóa học", catalog.CategoryStudy},
	{"học", catalog.CategoryStudy},
	{"hoc", catalog.CategoryStudy},
	{"game", catalog.CategoryGame},
	{"steam", catalog.CategoryGame},
	{"làm việc", catalog.CategoryWork},
	{"office", catalog.CategoryWork},
	{"thiết kế", catalog.CategoryWork},
	// Bare "ai" sits last: as a substring it hides inside common words
	// like "hài" or "mai", so every narrower keyword gets a shot first.
	{"ai", catalog.CategoryAI},
}

// priceMarkers flag a "show me something cheap" intent.
var priceMarkers = []string{"rẻ", "re nhat", "giá rẻ", "gia re", "cheap", "giá thấp", "tiết kiệm"}

// Classify maps a free-text utterance to product suggestions. The rules run
// in a fixed order and the first hit short-circuits:
//
//  1. a product name appearing verbatim in the utterance returns all such
//     products;
//  2. a category keyword returns up to 3 products of that category;
//  3. a cheapness marker returns the 3 lowest-priced products ascending;
//  4. otherwise an "unknown" reply with no products.
//
// Deterministic and stateless: nothing here learns or scores.
func Classify(utterance string, products []catalog.Product) Reply {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return Reply{Template: TemplateUnknown, Products: []catalog.Product{}}
	}

	// Rule 1: direct product-name mention. Full-name substring first, then
	// name-token overlap so "tôi cần netflix" still finds "Netflix
	// Premium". Tokens are slug-normalized, which makes the comparison
	// diacritics-insensitive on both sides.
	utteranceTokens := tokenSet(text)
	var named []catalog.Product
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(p.Name)) || nameMentioned(p.Name, utteranceTokens) {
			named = append(named, p)
		}
	}
	if len(named) > 0 {
		return Reply{Template: TemplateProductMatch, Products: named}
	}

	// Rule 2: first category keyword found in the utterance.
	for _, entry := range categoryKeywords {
		if !strings.Contains(text, entry.Keyword) {
			continue
		}

		var matched []catalog.Product
		for _, p := range products {
			if p.Category == entry.Category {
				matched = append(matched, p)
				if len(matched) == categoryLimit {
					break
				}
			}
		}
		return Reply{Template: TemplateCategoryMatch, Products: matched}
	}

	// Rule 3: cheapness intent.
	for _, marker := range priceMarkers {
		if strings.Contains(text, marker) {
			return Reply{Template: TemplateCheapest, Products: cheapest(products, categoryLimit)}
		}
	}

	return Reply{Template: TemplateUnknown, Products: []catalog.Product{}}
}

// genericNameTokens are tier words shared across half the catalog; alone
// they do not identify a product.
var genericNameTokens = map[string]struct{}{
	"premium":  {},
	"pro":      {},
	"plus":     {},
	"super":    {},
	"standard": {},
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range slug.Tokens(text) {
		set[tok] = struct{}{}
	}
	return set
}

// nameMentioned reports whether any distinctive token of the product name
// appears in the utterance.
func nameMentioned(name string, utteranceTokens map[string]struct{}) bool {
	for _, tok := range slug.Tokens(name) {
		if _, generic := genericNameTokens[tok]; generic {
			continue
		}
		if _, ok := utteranceTokens[tok]; ok {
			return true
		}
	}
	return false
}

func cheapest(products []catalog.Product, n int) []catalog.Product {
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
