package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		assert.True(t, CanTransition(OrderStatusPending, OrderStatusAccepted))
		assert.True(t, CanTransition(OrderStatusAccepted, OrderStatusShipped))
		assert.True(t, CanTransition(OrderStatusShipped, OrderStatusDelivered))
	})

	t.Run("rejection only from pending", func(t *testing.T) {
		assert.True(t, CanTransition(OrderStatusPending, OrderStatusRejected))
		assert.False(t, CanTransition(OrderStatusAccepted, OrderStatusRejected))
		assert.False(t, CanTransition(OrderStatusShipped, OrderStatusRejected))
		assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusRejected))
	})

	t.Run("no backward moves", func(t *testing.T) {
		assert.False(t, CanTransition(OrderStatusAccepted, OrderStatusPending))
		assert.False(t, CanTransition(OrderStatusShipped, OrderStatusAccepted))
		assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusShipped))
	})

	t.Run("no skips", func(t *testing.T) {
		assert.False(t, CanTransition(OrderStatusPending, OrderStatusShipped))
		assert.False(t, CanTransition(OrderStatusPending, OrderStatusDelivered))
		assert.False(t, CanTransition(OrderStatusAccepted, OrderStatusDelivered))
	})

	t.Run("terminal states", func(t *testing.T) {
		for _, to := range []OrderStatus{OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusShipped, OrderStatusDelivered} {
			assert.False(t, CanTransition(OrderStatusRejected, to), "Rejected -> %s", to)
			assert.False(t, CanTransition(OrderStatusDelivered, to), "Delivered -> %s", to)
		}
	})

	t.Run("self transitions are illegal", func(t *testing.T) {
		assert.False(t, CanTransition(OrderStatusPending, OrderStatusPending))
	})
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("Cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}
