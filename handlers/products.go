package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

func GetProduct(c echo.Context) error {
	productID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	err = database.DB.Collection("products").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

// GetProducts lists products, optionally filtered by category slug and
// status. The public storefront passes status=Active; the admin panel
// omits it to see drafts too.
func GetProducts(c echo.Context) error {
	filter := bson.M{}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("products").Find(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode products"})
	}

	return c.JSON(http.StatusOK, products)
}

func CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if product.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product name is required"})
	}
	if product.Status == "" {
		product.Status = models.ProductStatusDraft
	}
	if product.Stock < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Stock cannot be negative"})
	}
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.DB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if product.Stock < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Stock cannot be negative"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         product.Name,
		"category":     product.Category,
		"categoryName": product.CategoryName,
		"mrp":          product.MRP,
		"price":        product.Price,
		"image":        product.Image,
		"imageHover":   product.ImageHover,
		"image2":       product.Image2,
		"image3":       product.Image3,
		"description":  product.Description,
		"ingredients":  product.Ingredients,
		"productInfo":  product.ProductInfo,
		"productType":  product.ProductType,
		"stock":        product.Stock,
		"status":       product.Status,
	}}

	result, err := database.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

// DeleteProduct retires a product by moving it to Draft. Orders embed item
// snapshots so a hard delete is never required, and keeping the document
// preserves the catalog history.
func DeleteProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.ProductStatusDraft}}
	result, err := database.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product moved to Draft"})
}
