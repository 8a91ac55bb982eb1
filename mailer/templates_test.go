package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hariyalifarms/hariyali-backend-go/models"
)

func sampleOrder(status models.OrderStatus) models.Order {
	total, _ := models.ParsePrice("268.00")
	return models.Order{
		ID:           primitive.NewObjectID(),
		CustomerName: "Asha Patel",
		Email:        "asha@example.com",
		Total:        total,
		Status:       status,
		TrackingID:   "TRK123",
		ShippingURL:  "https://courier.example.com/TRK123",
	}
}

func TestBuildStatusEmail(t *testing.T) {
	t.Run("accepted includes total", func(t *testing.T) {
		order := sampleOrder(models.OrderStatusAccepted)

		msg, err := BuildStatusEmail(order, models.OrderStatusAccepted)
		require.NoError(t, err)

		assert.Equal(t, "asha@example.com", msg.To)
		assert.Contains(t, msg.Subject, order.ID.Hex())
		assert.Contains(t, msg.Text, "Asha Patel")
		assert.Contains(t, msg.Text, "268.00")
		assert.NotEmpty(t, msg.HTML)
	})

	t.Run("shipped includes tracking details", func(t *testing.T) {
		order := sampleOrder(models.OrderStatusShipped)

		msg, err := BuildStatusEmail(order, models.OrderStatusShipped)
		require.NoError(t, err)

		assert.Contains(t, msg.Text, "TRK123")
		assert.Contains(t, msg.Text, "https://courier.example.com/TRK123")
	})

	t.Run("shipped without tracking omits the lines", func(t *testing.T) {
		order := sampleOrder(models.OrderStatusShipped)
		order.TrackingID = ""
		order.ShippingURL = ""

		msg, err := BuildStatusEmail(order, models.OrderStatusShipped)
		require.NoError(t, err)

		assert.NotContains(t, msg.Text, "Tracking ID")
	})

	t.Run("current status does not gate the template", func(t *testing.T) {
		// An admin may send a Shipped email for an order that is
		// already Delivered.
		order := sampleOrder(models.OrderStatusDelivered)

		msg, err := BuildStatusEmail(order, models.OrderStatusShipped)
		require.NoError(t, err)
		assert.Contains(t, msg.Subject, "on its way")
	})

	t.Run("unknown status is an error", func(t *testing.T) {
		order := sampleOrder(models.OrderStatusPending)

		_, err := BuildStatusEmail(order, models.OrderStatus("Cancelled"))
		assert.Error(t, err)
	})
}
