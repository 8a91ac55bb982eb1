package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/logger"
	"github.com/hariyalifarms/hariyali-backend-go/models"
	"github.com/hariyalifarms/hariyali-backend-go/pricing"
)

type CheckoutRequest struct {
	Items         []models.CartItem `json:"items"`
	Address       *models.Address   `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerName  string            `json:"customerName"`
	Email         string            `json:"email"`
}

// loadShippingCharge reads settings/shipping. Only a missing document means
// free shipping; any other read failure aborts the checkout so an order is
// never priced against defaults while a charge is actually configured.
func loadShippingCharge(ctx context.Context) (decimal.Decimal, error) {
	var settings models.ShippingSettings
	err := database.DB.Collection("settings").FindOne(ctx, bson.M{"_id": "shipping"}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Decimal{}, err
	}
	return settings.Charge.Decimal(), nil
}

// loadFees reads settings/fees. Only a missing document means no fees.
func loadFees(ctx context.Context) ([]models.Fee, error) {
	var settings models.FeeSettings
	err := database.DB.Collection("settings").FindOne(ctx, bson.M{"_id": "fees"}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return []models.Fee{}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings.Charges, nil
}

// Checkout places an order. The shipping charge and fee set current at this
// moment are snapshotted into the order, as are the address and line items,
// so later edits never rewrite order history. After the order document is
// written, each product's stock is decremented (floored at zero); a failed
// decrement is logged but does not undo the order.
func Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
	}
	if req.Address == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Shipping address is required"})
	}

	userID := "guest"
	if id, ok := c.Get("userID").(string); ok && id != "" {
		userID = id
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shipping, err := loadShippingCharge(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load shipping settings"})
	}
	fees, err := loadFees(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load fee settings"})
	}
	totals := pricing.ComputeOrderTotals(req.Items, shipping, fees)

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		ShippingAddress: *req.Address,
		Items:           items,
		Subtotal:        models.NewPrice(totals.Subtotal),
		Shipping:        models.NewPrice(totals.Shipping),
		Fees:            totals.Fees,
		Total:           models.NewPrice(totals.Total),
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		Date:            time.Now(),
	}

	_, err = database.DB.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	// Stock decrements happen after the order write and are best-effort:
	// an order whose decrement failed simply leaves stale stock behind.
	for _, item := range req.Items {
		if err := decrementProductStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Get().Warn().Err(err).
				Str("orderId", order.ID.Hex()).
				Str("productId", item.ProductID).
				Msg("stock decrement failed after order creation")
		}
	}

	return c.JSON(http.StatusCreated, order)
}

func decrementProductStock(ctx context.Context, productID string, qty int) error {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return err
	}

	products := database.DB.Collection("products")
	var product models.Product
	if err := products.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		return err
	}

	remaining := pricing.DecrementStock(product.Stock, qty)
	_, err = products.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"stock": remaining}})
	return err
}

// GetMyOrders lists the authenticated user's orders, newest first.
func GetMyOrders(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := database.DB.Collection("orders").Find(ctx, bson.M{"userId": userID}, opts)
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

func GetOrder(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var order models.Order
	err = database.DB.Collection("orders").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, order)
}
