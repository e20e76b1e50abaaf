package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func netflix() Snapshot {
	return Snapshot{ProductID: "1", Name: "Netflix Premium", Price: 69000}
}

func spotify() Snapshot {
	return Snapshot{ProductID: "2", Name: "Spotify Premium", Price: 29000}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	var c Cart
	c.Add(netflix())
	c.Add(netflix())

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(netflix())
	c.Add(spotify())
	c.Add(netflix()) // increments line 0, must not move it

	require.Len(t, c.Items, 2)
	assert.Equal(t, "1", c.Items[0].ProductID)
	assert.Equal(t, "2", c.Items[1].ProductID)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemove(t *testing.T) {
	var c Cart
	c.Add(netflix())
	c.Add(spotify())

	c.Remove("1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "2", c.Items[0].ProductID)

	c.Remove("missing") // no-op
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityFloorOfOne(t *testing.T) {
	var c Cart
	c.Add(netflix())

	// Decrement at quantity 1 is a no-op, item stays.
	c.UpdateQuantity("1", -1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)

	c.Add(netflix())
	c.UpdateQuantity("1", -1)
	assert.Equal(t, 1, c.Items[0].Quantity)

	c.UpdateQuantity("1", 3)
	assert.Equal(t, 4, c.Items[0].Quantity)

	c.UpdateQuantity("missing", 1) // no-op
	assert.Len(t, c.Items, 1)
}

func TestTotalAndCount(t *testing.T) {
	var c Cart
	c.Add(netflix())
	c.Add(netflix())
	c.Add(spotify())

	// 69000*2 + 29000*1
	assert.Equal(t, int64(167000), c.Total())
	assert.Equal(t, 3, c.Count())

	totals := c.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(167000), totals.TotalAmount)
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(netflix())
	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, 0, c.Count())
}
