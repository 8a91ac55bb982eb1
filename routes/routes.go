package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hariyalifarms/hariyali-backend-go/handlers"
	"github.com/hariyalifarms/hariyali-backend-go/metrics"
	customMiddleware "github.com/hariyalifarms/hariyali-backend-go/middleware"
	"github.com/hariyalifarms/hariyali-backend-go/models"
)

func SetupRoutes(e *echo.Echo) {
	// Public storefront
	e.POST("/register", handlers.RegisterUser)
	e.POST("/login", handlers.LoginUser)
	e.POST("/employee/login", handlers.LoginEmployee)

	e.GET("/products", handlers.GetProducts)
	e.GET("/products/:id", handlers.GetProduct)
	e.GET("/categories", handlers.GetCategories)
	e.GET("/categories/:slug", handlers.GetCategoryBySlug)
	e.GET("/services", handlers.GetServices)
	e.GET("/slideshow", handlers.GetSlideshow)
	e.GET("/locations", handlers.GetLocations)
	e.GET("/settings/shipping", handlers.GetShippingCharge)
	e.GET("/settings/fees", handlers.GetFees)

	// Checkout works for guests and signed-in customers
	e.POST("/checkout", handlers.Checkout, customMiddleware.OptionalAuth)
	e.GET("/orders/:id", handlers.GetOrder)

	// Scheme application forms
	e.POST("/applications/kcc", handlers.SubmitKCCApplication)
	e.POST("/applications/jaivik-card", handlers.SubmitJaivikCardApplication)
	e.POST("/applications/coordinator", handlers.SubmitCoordinatorApplication)

	// Customer surface
	api := e.Group("/api")
	api.Use(customMiddleware.AuthMiddleware)

	api.GET("/users/me", handlers.GetUserProfile)
	api.PUT("/users/me", handlers.UpdateUserProfile)
	api.GET("/users/me/addresses", handlers.GetUserAddresses)
	api.POST("/users/me/addresses", handlers.AddUserAddress)
	api.PUT("/users/me/addresses/:id", handlers.UpdateUserAddress)
	api.DELETE("/users/me/addresses/:id", handlers.DeleteUserAddress)
	api.GET("/orders", handlers.GetMyOrders)

	// Back office
	admin := api.Group("/admin")
	admin.Use(customMiddleware.RequireRole(string(models.RoleAdmin), string(models.RoleEmployee)))

	admin.GET("/dashboard", handlers.GetDashboardStats)

	admin.POST("/products", handlers.CreateProduct)
	admin.PUT("/products/:id", handlers.UpdateProduct)
	admin.DELETE("/products/:id", handlers.DeleteProduct)
	admin.POST("/categories", handlers.CreateCategory)
	admin.DELETE("/categories/:id", handlers.DeleteCategory)

	admin.GET("/orders", handlers.GetAllOrders)
	admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	admin.POST("/orders/:id/notify", handlers.NotifyOrderStatus)

	admin.GET("/users", handlers.GetUsers)

	admin.PUT("/settings/shipping", handlers.UpdateShippingCharge)
	admin.PUT("/settings/fees", handlers.UpdateFees)

	admin.GET("/employees", handlers.GetEmployees)
	admin.POST("/employees", handlers.CreateEmployee)
	admin.PUT("/employees/:id", handlers.UpdateEmployee)
	admin.DELETE("/employees/:id", handlers.DeleteEmployee)

	admin.GET("/tasks", handlers.GetTasks)
	admin.POST("/tasks", handlers.CreateTask)
	admin.PUT("/tasks/:id", handlers.UpdateTask)
	admin.DELETE("/tasks/:id", handlers.DeleteTask)

	admin.GET("/applications/kcc", handlers.GetKCCApplications)
	admin.PUT("/applications/kcc/:id", handlers.UpdateKCCApplication)
	admin.GET("/applications/jaivik-card", handlers.GetJaivikCardApplications)
	admin.PUT("/applications/jaivik-card/:id", handlers.UpdateJaivikCardApplication)
	admin.GET("/applications/coordinator", handlers.GetCoordinatorApplications)
	admin.PUT("/applications/coordinator/:id", handlers.UpdateCoordinatorApplication)

	admin.POST("/services", handlers.CreateService)
	admin.DELETE("/services/:id", handlers.DeleteService)
	admin.POST("/slideshow", handlers.CreateSlide)
	admin.DELETE("/slideshow/:id", handlers.DeleteSlide)
	admin.POST("/locations", handlers.CreateLocation)
	admin.DELETE("/locations/:id", handlers.DeleteLocation)

	e.GET("/metrics", metrics.Handler())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
