package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

func GetEmployees(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("employees").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch employees"})
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode employees"})
	}

	for i := range employees {
		employees[i].Password = ""
	}
	return c.JSON(http.StatusOK, employees)
}

func CreateEmployee(c echo.Context) error {
	var employee models.Employee
	if err := c.Bind(&employee); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if !isValidEmail(employee.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	}
	if len(employee.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 8 characters"})
	}
	if employee.Role == "" {
		employee.Role = models.RoleEmployee
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := database.DB.Collection("employees")
	existing := collection.FindOne(ctx, bson.M{"email": employee.Email})
	if existing.Err() == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process password"})
	}
	employee.Password = string(hashedPassword)
	employee.ID = primitive.NewObjectID()
	employee.Status = "active"
	employee.CreatedAt = time.Now()

	if _, err := collection.InsertOne(ctx, employee); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create employee"})
	}

	employee.Password = ""
	return c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid employee ID"})
	}

	var req struct {
		Name   string              `json:"name"`
		Phone  string              `json:"phone"`
		Role   models.EmployeeRole `json:"role"`
		Status string              `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":   req.Name,
		"phone":  req.Phone,
		"role":   req.Role,
		"status": req.Status,
	}}
	result, err := database.DB.Collection("employees").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update employee"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Employee not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Employee updated"})
}

func DeleteEmployee(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid employee ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("employees").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete employee"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Employee not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted"})
}
