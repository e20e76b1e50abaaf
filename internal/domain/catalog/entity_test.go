package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		original int64
		want     int
	}{
		{"typical discount", 100000, 400000, 75},
		{"rounds to nearest", 69000, 260000, 73},
		{"no original price", 50000, 0, 0},
		{"original below price", 100000, 80000, 0},
		{"equal prices", 100000, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, AverageRating(reviews))

	reviews = []Review{{Rating: 5}, {Rating: 2}}
	assert.Equal(t, 3.5, AverageRating(reviews))
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryAI.Valid())
	assert.True(t, CategoryGame.Valid())
	assert.False(t, CategoryAll.Valid())
	assert.False(t, Category("unknown").Valid())
}
