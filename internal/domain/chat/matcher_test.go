package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
)

func chatCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Name: "Netflix Premium", Category: catalog.CategoryEntertainment, Price: 69000},
		{ID: "2", Name: "Spotify Premium", Category: catalog.CategoryEntertainment, Price: 29000},
		{ID: "3", Name: "YouTube Premium", Category: catalog.CategoryEntertainment, Price: 25000},
		{ID: "4", Name: "Disney+", Category: catalog.CategoryEntertainment, Price: 49000},
		{ID: "5", Name: "ChatGPT Plus", Category: catalog.CategoryAI, Price: 399000},
		{ID: "6", Name: "Canva Pro", Category: catalog.CategoryWork, Price: 149000},
	}
}

func TestClassifyProductNameWinsOverCategory(t *testing.T) {
	// "phim" is an entertainment keyword, but the explicit product mention
	// must resolve through rule 1, which runs first.
	reply := Classify("tôi muốn xem phim trên netflix", chatCatalog())

	assert.Equal(t, TemplateProductMatch, reply.Template)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Netflix Premium", reply.Products[0].Name)
}

func TestClassifyNameTokenMatch(t *testing.T) {
	reply := Classify("tôi cần netflix", chatCatalog())

	assert.Equal(t, TemplateProductMatch, reply.Template)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "1", reply.Products[0].ID)
}

func TestClassifyCategoryKeyword(t *testing.T) {
	reply := Classify("có gói nào để xem không", chatCatalog())

	assert.Equal(t, TemplateCategoryMatch, reply.Template)
	require.Len(t, reply.Products, 3) // capped at 3
	for _, p := range reply.Products {
		assert.Equal(t, catalog.CategoryEntertainment, p.Category)
	}
}

func TestClassifyCheapestIntent(t *testing.T) {
	reply := Classify("sản phẩm nào giá rẻ nhất shop", chatCatalog())

	assert.Equal(t, TemplateCheapest, reply.Template)
	require.Len(t, reply.Products, 3)
	assert.Equal(t, []string{"3", "2", "4"}, []string{
		reply.Products[0].ID, reply.Products[1].ID, reply.Products[2].ID,
	})
}

func TestClassifyFallback(t *testing.T) {
	reply := Classify("xyzzy hoàn toàn khó hiểu", chatCatalog())

	assert.Equal(t, TemplateUnknown, reply.Template)
	assert.Empty(t, reply.Products)
}

func TestClassifyEmptyUtterance(t *testing.T) {
	reply := Classify("   ", chatCatalog())
	assert.Equal(t, TemplateUnknown, reply.Template)
	assert.Empty(t, reply.Products)
}

func TestClassifyGenericTokenDoesNotMatchName(t *testing.T) {
	// "premium" alone names half the catalog; it must fall through to the
	// later rules instead of firing rule 1.
	reply := Classify("gói premium", chatCatalog())
	assert.NotEqual(t, TemplateProductMatch, reply.Template)
}
