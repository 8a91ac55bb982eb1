package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

// Storefront content collections (services, slideshow, locations): plain
// CRUD, publicly readable, admin writable.

func listContent[T any](c echo.Context, collection string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch " + collection})
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode " + collection})
	}
	return c.JSON(http.StatusOK, docs)
}

func createContent[T any](c echo.Context, collection string, prepare func(*T)) error {
	var doc T
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	prepare(&doc)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection(collection).InsertOne(ctx, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create document"})
	}
	return c.JSON(http.StatusCreated, doc)
}

func deleteContent(c echo.Context, collection string) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection(collection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete document"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Document not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

func GetServices(c echo.Context) error {
	return listContent[models.Service](c, "services")
}

func CreateService(c echo.Context) error {
	return createContent(c, "services", func(s *models.Service) {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = time.Now()
	})
}

func DeleteService(c echo.Context) error {
	return deleteContent(c, "services")
}

func GetSlideshow(c echo.Context) error {
	return listContent[models.Slide](c, "slideshow")
}

func CreateSlide(c echo.Context) error {
	return createContent(c, "slideshow", func(s *models.Slide) {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = time.Now()
	})
}

func DeleteSlide(c echo.Context) error {
	return deleteContent(c, "slideshow")
}

func GetLocations(c echo.Context) error {
	return listContent[models.Location](c, "locations")
}

func CreateLocation(c echo.Context) error {
	return createContent(c, "locations", func(l *models.Location) {
		l.ID = primitive.NewObjectID()
		l.CreatedAt = time.Now()
	})
}

func DeleteLocation(c echo.Context) error {
	return deleteContent(c, "locations")
}
