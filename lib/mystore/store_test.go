package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type capture struct {
	OrderID string
	Amount  string
}

var (
	capture1 = capture{OrderID: "5O190127TN364715T", Amount: "52.00"}
	capture2 = capture{OrderID: "8AB12345CD678901E", Amount: "206.00"}
)

func TestInMemoryStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := New[capture](c, "")
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, capture1.OrderID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		assert.NoError(t, ps.Put(c, capture2.OrderID, capture2))
		assert.NoError(t, ps.Put(c, capture1.OrderID, capture1))
	})

	t.Run("Get found", func(t *testing.T) {
		got, found, err := ps.Get(c, capture1.OrderID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, capture{OrderID: "5O190127TN364715T", Amount: "52.00"}, got)
	})

	t.Run("Put twice overwrites", func(t *testing.T) {
		assert.NoError(t, ps.Put(c, capture1.OrderID, capture1))
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("List ordered by uid", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []capture{capture1, capture2}, all)
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "capture", kindOf[capture]())
}
