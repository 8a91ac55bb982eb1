package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/mailer"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

// Notifier is the outbound mail gateway used by admin order actions.
// Swapped for a fake in tests.
var Notifier mailer.Sender = mailer.NewSMTPSender()

// GetAllOrders lists every order for the back office, optionally filtered
// by status, newest first.
func GetAllOrders(c echo.Context) error {
	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := database.DB.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

type UpdateStatusRequest struct {
	Status      models.OrderStatus `json:"status"`
	TrackingID  string             `json:"trackingId,omitempty"`
	ShippingURL string             `json:"shippingUrl,omitempty"`
}

// UpdateOrderStatus moves an order along the workflow. Transitions outside
// the table (backwards moves, skips, writes to a terminal order) are
// rejected. Tracking details may be attached together with the move to
// Shipped; they are optional.
func UpdateOrderStatus(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown order status"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders := database.DB.Collection("orders")

	var order models.Order
	if err := orders.FindOne(ctx, bson.M{"_id": objID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	if !models.CanTransition(order.Status, req.Status) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "Illegal status transition from " + string(order.Status) + " to " + string(req.Status),
		})
	}

	set := bson.M{"status": req.Status}
	if req.Status == models.OrderStatusShipped {
		if req.TrackingID != "" {
			set["trackingId"] = req.TrackingID
		}
		if req.ShippingURL != "" {
			set["shippingUrl"] = req.ShippingURL
		}
	}

	// Filtering on the status just read makes the transition check atomic:
	// if a concurrent admin action moved the order first, this write
	// matches nothing instead of landing a stale transition.
	result, err := orders.UpdateOne(ctx, bson.M{"_id": objID, "status": order.Status}, bson.M{"$set": set})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Order status changed concurrently, reload and retry"})
	}

	order.Status = req.Status
	if req.Status == models.OrderStatusShipped {
		if req.TrackingID != "" {
			order.TrackingID = req.TrackingID
		}
		if req.ShippingURL != "" {
			order.ShippingURL = req.ShippingURL
		}
	}
	return c.JSON(http.StatusOK, order)
}

type NotifyRequest struct {
	Status models.OrderStatus `json:"status,omitempty"`
}

// NotifyOrderStatus sends the customer a status email on the admin's
// request. The order's current status does not gate which email may be
// sent, and a failed dispatch is reported to the operator without touching
// the order itself.
func NotifyOrderStatus(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	var order models.Order
	err = database.DB.Collection("orders").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	if order.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Order has no customer email"})
	}

	status := req.Status
	if status == "" {
		status = order.Status
	}

	msg, err := mailer.BuildStatusEmail(order, status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	success := Notifier.Send(msg)
	return c.JSON(http.StatusOK, map[string]bool{"success": success})
}
