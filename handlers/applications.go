package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

// Government-scheme application forms: submitted from the public storefront,
// reviewed from the back office. All three collections share the same CRUD
// shape, so the handlers are thin wrappers over the generic helpers below.

func submitApplication[T any](c echo.Context, collection string, prepare func(*T)) error {
	var app T
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	prepare(&app)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection(collection).InsertOne(ctx, app); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit application"})
	}
	return c.JSON(http.StatusCreated, app)
}

func listApplications[T any](c echo.Context, collection string) error {
	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := database.DB.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch applications"})
	}
	defer cursor.Close(ctx)

	apps := []T{}
	if err := cursor.All(ctx, &apps); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode applications"})
	}
	return c.JSON(http.StatusOK, apps)
}

func setApplicationStatus(c echo.Context, collection string) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid application ID"})
	}

	var req struct {
		Status models.ApplicationStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Status is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": req.Status}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update application"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Application not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application updated"})
}

func SubmitKCCApplication(c echo.Context) error {
	return submitApplication(c, "kcc-applications", func(app *models.KCCApplication) {
		app.ID = primitive.NewObjectID()
		app.Status = models.ApplicationReceived
		app.CreatedAt = time.Now()
	})
}

func GetKCCApplications(c echo.Context) error {
	return listApplications[models.KCCApplication](c, "kcc-applications")
}

func UpdateKCCApplication(c echo.Context) error {
	return setApplicationStatus(c, "kcc-applications")
}

func SubmitJaivikCardApplication(c echo.Context) error {
	return submitApplication(c, "kisan-jaivik-card-applications", func(app *models.JaivikCardApplication) {
		app.ID = primitive.NewObjectID()
		app.Status = models.ApplicationReceived
		app.CreatedAt = time.Now()
	})
}

func GetJaivikCardApplications(c echo.Context) error {
	return listApplications[models.JaivikCardApplication](c, "kisan-jaivik-card-applications")
}

func UpdateJaivikCardApplication(c echo.Context) error {
	return setApplicationStatus(c, "kisan-jaivik-card-applications")
}

func SubmitCoordinatorApplication(c echo.Context) error {
	return submitApplication(c, "coordinator-applications", func(app *models.CoordinatorApplication) {
		app.ID = primitive.NewObjectID()
		app.Status = models.ApplicationReceived
		app.CreatedAt = time.Now()
	})
}

func GetCoordinatorApplications(c echo.Context) error {
	return listApplications[models.CoordinatorApplication](c, "coordinator-applications")
}

func UpdateCoordinatorApplication(c echo.Context) error {
	return setApplicationStatus(c, "coordinator-applications")
}
