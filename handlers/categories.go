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
	"github.com/hariyalifarms/hariyali-backend-go/utils"
)

func GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch categories"})
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode categories"})
	}

	return c.JSON(http.StatusOK, categories)
}

func GetCategoryBySlug(c echo.Context) error {
	var category models.Category
	err := database.DB.Collection("categories").FindOne(c.Request().Context(), bson.M{"slug": c.Param("slug")}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Category not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch category"})
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory derives the slug from the name; the slug is the stable
// identifier products and orders reference.
func CreateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if category.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Category name is required"})
	}

	category.ID = primitive.NewObjectID()
	category.Slug = utils.Slugify(category.Name)
	category.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing := database.DB.Collection("categories").FindOne(ctx, bson.M{"slug": category.Slug})
	if existing.Err() == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Category already exists"})
	}

	_, err := database.DB.Collection("categories").InsertOne(ctx, category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create category"})
	}

	return c.JSON(http.StatusCreated, category)
}

func DeleteCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("categories").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete category"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Category not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted"})
}
