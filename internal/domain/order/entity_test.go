package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemsTotal(t *testing.T) {
	items := []Item{
		{ProductID: "1", Price: 69000, Quantity: 2},
		{ProductID: "2", Price: 29000, Quantity: 1},
	}
	assert.Equal(t, int64(167000), ItemsTotal(items))
	assert.Equal(t, int64(0), ItemsTotal(nil))
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusProcessing, false},
	}

	for _, tt := range tests {
		o := Order{Status: tt.from}
		assert.Equal(t, tt.ok, o.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("shipped").Valid())
}

func TestFormatOrderNumber(t *testing.T) {
	at := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20250309-00042", FormatOrderNumber(42, at))
}
