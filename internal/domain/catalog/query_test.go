package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []Product {
	return []Product{
		{ID: "1", Name: "Netflix Premium", Description: "Xem phim 4K", Category: CategoryEntertainment, Price: 69000, Sold: 500},
		{ID: "2", Name: "Spotify Premium", Description: "Nghe nhạc không quảng cáo", Category: CategoryEntertainment, Price: 29000, Sold: 900},
		{ID: "3", Name: "ChatGPT Plus", Description: "Trợ lý AI GPT-4", Category: CategoryAI, Price: 399000, Sold: 300, IsNew: true},
		{ID: "4", Name: "Midjourney Standard", Description: "Tạo ảnh AI", Category: CategoryAI, Price: 690000, Sold: 150},
		{ID: "5", Name: "Canva Pro", Description: "Thiết kế đồ họa", Category: CategoryWork, Price: 149000, Sold: 700},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQueryCategoryFilter(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Category: CategoryAI})
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, CategoryAI, p.Category)
	}

	all := Query(queryFixture(), QueryRequest{Category: CategoryAll})
	assert.Len(t, all, 5)

	absent := Query(queryFixture(), QueryRequest{})
	assert.Len(t, absent, 5)
}

func TestQuerySearchIsConjunctive(t *testing.T) {
	// Every token must hit the haystack; one miss empties the result even
	// when the other tokens match.
	got := Query(queryFixture(), QueryRequest{Search: "netflix premium xyz123"})
	assert.Empty(t, got)

	got = Query(queryFixture(), QueryRequest{Search: "netflix premium"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestQuerySearchNormalizesDiacritics(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Search: "đồ họa"})
	assert.Equal(t, []string{"5"}, ids(got))
}

func TestQueryEmptySearchBypassed(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Category: CategoryEntertainment, Search: "   "})
	assert.Len(t, got, 2)
}

func TestQueryCategoryRestrictsSearch(t *testing.T) {
	// "netflix" only exists in entertainment; scoping to AI must not relax
	// the category filter.
	got := Query(queryFixture(), QueryRequest{Category: CategoryAI, Search: "netflix"})
	assert.Empty(t, got)
}

func TestQueryPriceCeiling(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{PriceMax: 150000})
	for _, p := range got {
		assert.LessOrEqual(t, p.Price, int64(150000))
	}
	assert.Len(t, got, 3)
}

func TestQuerySortPriceAscending(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Sort: SortPriceAsc})
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestQuerySortStable(t *testing.T) {
	products := []Product{
		{ID: "a", Price: 100, Sold: 10},
		{ID: "b", Price: 100, Sold: 10},
		{ID: "c", Price: 100, Sold: 10},
	}
	got := Query(products, QueryRequest{Sort: SortPriceAsc})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = Query(products, QueryRequest{Sort: SortPopular})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestQuerySortNewestPartition(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Sort: SortNewest})
	require.Len(t, got, 5)
	// Only "3" carries IsNew; the partition puts it last, input order kept
	// for the rest.
	assert.Equal(t, []string{"1", "2", "4", "5", "3"}, ids(got))
}

func TestQuerySortName(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{Sort: SortName})
	assert.Equal(t, []string{"5", "3", "4", "1", "2"}, ids(got))
}

func TestQueryDefaultSortPopularity(t *testing.T) {
	got := Query(queryFixture(), QueryRequest{})
	assert.Equal(t, []string{"2", "5", "1", "3", "4"}, ids(got))
}

func TestQueryEndToEndScenario(t *testing.T) {
	// Category filter + price ceiling + descending-price sort, asserted
	// against the hand-computed id order.
	products := queryFixture()
	got := Query(products, QueryRequest{
		Category: CategoryEntertainment,
		PriceMax: 100000,
		Sort:     SortPriceDesc,
	})
	assert.Equal(t, []string{"1", "2"}, ids(got))

	got = Query(products, QueryRequest{
		Category: CategoryAI,
		PriceMax: 500000,
		Sort:     SortPriceDesc,
	})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := queryFixture()
	Query(products, QueryRequest{Sort: SortPriceDesc})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}
