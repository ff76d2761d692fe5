package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrderCreated(t *testing.T) {
	body := []byte(`{
		"event_id": "7d3c",
		"order_id": 12,
		"customer_name": "Ayesha Khan",
		"product_name": "Lawn Suit",
		"quantity": 3,
		"total_price": 7500,
		"payment_method": "COD",
		"status": "pending",
		"timestamp": "2025-03-12T10:00:00Z"
	}`)

	event, err := DecodeOrderCreated(body)
	require.NoError(t, err)
	assert.Equal(t, uint(12), event.OrderID)
	assert.Equal(t, "Lawn Suit", event.ProductName)
	assert.Equal(t, "7500", event.TotalPrice.String())
}

func TestDecodeOrderCreated_Invalid(t *testing.T) {
	_, err := DecodeOrderCreated([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeOrderCreated([]byte(`{"customer_name":"x"}`))
	assert.ErrorContains(t, err, "order_id")
}

func TestClientWithoutChannel(t *testing.T) {
	c := &Client{}
	assert.Error(t, c.publishJSON(OrderQueue, "order.created", "", map[string]string{}))
	assert.Error(t, c.ConsumeOrderEvents(nil))
	assert.NoError(t, c.Close())
}
