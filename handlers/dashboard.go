package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

type DashboardStats struct {
	OrdersByStatus      map[string]int64 `json:"ordersByStatus"`
	Revenue             string           `json:"revenue"` // delivered orders, 2 dp
	ProductCount        int64            `json:"productCount"`
	UserCount           int64            `json:"userCount"`
	PendingApplications int64            `json:"pendingApplications"`
	LowStockProducts    []models.Product `json:"lowStockProducts"`
}

const lowStockThreshold = 5

// GetDashboardStats aggregates the numbers shown on the admin home screen.
func GetDashboardStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats := DashboardStats{
		OrdersByStatus: map[string]int64{},
		Revenue:        decimal.Zero.StringFixed(2),
	}

	orders := database.DB.Collection("orders")
	cursor, err := orders.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate orders"})
	}
	var counts []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &counts); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode order counts"})
	}
	for _, row := range counts {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	// Totals are stored as decimal strings, so revenue is summed here
	// rather than in a pipeline.
	delivered, err := orders.Find(ctx, bson.M{"status": models.OrderStatusDelivered})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch delivered orders"})
	}
	revenue := decimal.Zero
	var deliveredOrders []models.Order
	if err := delivered.All(ctx, &deliveredOrders); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode delivered orders"})
	}
	for _, order := range deliveredOrders {
		revenue = revenue.Add(order.Total.Decimal())
	}
	stats.Revenue = revenue.StringFixed(2)

	if stats.ProductCount, err = database.DB.Collection("products").CountDocuments(ctx, bson.M{}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count products"})
	}
	if stats.UserCount, err = database.DB.Collection("users").CountDocuments(ctx, bson.M{}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count users"})
	}

	for _, collection := range []string{"kcc-applications", "kisan-jaivik-card-applications", "coordinator-applications"} {
		n, err := database.DB.Collection(collection).CountDocuments(ctx, bson.M{"status": models.ApplicationReceived})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count applications"})
		}
		stats.PendingApplications += n
	}

	lowStock, err := database.DB.Collection("products").Find(ctx, bson.M{
		"stock":  bson.M{"$lte": lowStockThreshold},
		"status": models.ProductStatusActive,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch low-stock products"})
	}
	stats.LowStockProducts = []models.Product{}
	if err := lowStock.All(ctx, &stats.LowStockProducts); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode low-stock products"})
	}

	return c.JSON(http.StatusOK, stats)
}
