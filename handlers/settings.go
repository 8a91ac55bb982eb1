package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

// Shipping and fees are global admin-managed settings read fresh at each
// checkout and snapshotted into the order, so edits here are never
// retroactive.

func GetShippingCharge(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var settings models.ShippingSettings
	err := database.DB.Collection("settings").FindOne(ctx, bson.M{"_id": "shipping"}).Decode(&settings)
	if err != nil {
		// No document yet means free shipping.
		return c.JSON(http.StatusOK, models.ShippingSettings{})
	}
	return c.JSON(http.StatusOK, settings)
}

func UpdateShippingCharge(c echo.Context) error {
	var settings models.ShippingSettings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if settings.Charge.Decimal().IsNegative() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Shipping charge cannot be negative"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.DB.Collection("settings").UpdateOne(
		ctx,
		bson.M{"_id": "shipping"},
		bson.M{"$set": bson.M{"charge": settings.Charge}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update shipping charge"})
	}

	return c.JSON(http.StatusOK, settings)
}

func GetFees(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var settings models.FeeSettings
	err := database.DB.Collection("settings").FindOne(ctx, bson.M{"_id": "fees"}).Decode(&settings)
	if err != nil {
		return c.JSON(http.StatusOK, models.FeeSettings{Charges: []models.Fee{}})
	}
	return c.JSON(http.StatusOK, settings)
}

func UpdateFees(c echo.Context) error {
	var settings models.FeeSettings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	seen := map[string]bool{}
	for _, fee := range settings.Charges {
		if fee.Name == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Fee name is required"})
		}
		if seen[fee.Name] {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Duplicate fee name: " + fee.Name})
		}
		seen[fee.Name] = true
		if fee.Value.Decimal().IsNegative() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Fee value cannot be negative"})
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.DB.Collection("settings").UpdateOne(
		ctx,
		bson.M{"_id": "fees"},
		bson.M{"$set": bson.M{"charges": settings.Charges}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update fees"})
	}

	return c.JSON(http.StatusOK, settings)
}
