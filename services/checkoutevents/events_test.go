package checkoutevents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventNames(t *testing.T) {
	created := OrderCreated{OrderID: "ORDER-1"}
	assert.Equal(t, "checkout.created", created.GetEventTypeName())
	assert.Equal(t, "ORDER-1", created.GetAggregateName())

	captured := OrderCaptured{OrderID: "ORDER-2"}
	assert.Equal(t, "checkout.captured", captured.GetEventTypeName())
	assert.Equal(t, "ORDER-2", captured.GetAggregateName())
}
