package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/burgerclub/gin-burger-api/docs" // Import generated docs
	"github.com/burgerclub/gin-burger-api/internal/cache"
	"github.com/burgerclub/gin-burger-api/internal/config"
	"github.com/burgerclub/gin-burger-api/internal/controllers"
	"github.com/burgerclub/gin-burger-api/internal/database"
	"github.com/burgerclub/gin-burger-api/internal/middleware"
	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/payment"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                   *gorm.DB
	configuration        *config.Config
	authController       *controllers.AuthController
	menuController       controllers.MenuController
	ingredientController controllers.IngredientController
	cartController       controllers.CartController
	orderController      controllers.OrderController
)

// @title Burger Shop API
// @version 1.0
// @description Online ordering API for a single burger restaurant
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Optional Redis menu cache (nil when REDIS_ADDR is unset)
	menuCache := cache.NewMenuCache(
		configuration.RedisAddr,
		configuration.RedisPassword,
		time.Duration(configuration.MenuCacheTTL)*time.Second,
	)

	// Initialize services and controllers
	gateway := payment.NewSimulatedGateway()
	userService := services.NewUserService(db)
	menuService := services.NewMenuService(db, menuCache)
	ingredientService := services.NewIngredientService(db)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db, gateway)

	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	menuController = controllers.NewMenuController(menuService)
	ingredientController = controllers.NewIngredientController(ingredientService)
	cartController = controllers.NewCartController(cartService)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds an empty catalog when demo seeding is enabled
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Burger{},
		&models.BurgerIngredient{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	checkPanicErr(err)

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.Burger{}).Count(&count)
	if count == 0 && conf.SeedDemoData {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with a demo catalog
func seedDatabase() {
	log.Info("Seeding database with initial data")
	ingredients := []models.Ingredient{
		{Name: "Beef Patty", Price: 2.50, IsAvailable: true},
		{Name: "Cheddar", Price: 0.80, IsAvailable: true},
		{Name: "Lettuce", Price: 0.30, IsAvailable: true},
		{Name: "Tomato", Price: 0.30, IsAvailable: true},
		{Name: "Bacon", Price: 1.20, IsAvailable: true},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}

	burgers := []models.Burger{
		{Name: "Classic", Description: "Beef, lettuce, tomato", Price: 8.99, IsAvailable: true},
		{Name: "Cheeseburger", Description: "Classic plus cheddar", Price: 9.99, IsAvailable: true},
		{Name: "Bacon Deluxe", Description: "Double beef, bacon, cheddar", Price: 12.49, IsAvailable: true},
	}
	for i := range burgers {
		db.Create(&burgers[i])
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/burgers", menuController.GetAllBurgers)
			publicApi.GET("/burgers/:id", menuController.GetBurgerByID)
		}

		// Authentication routes (public but for auth purposes)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		{
			protectedApi.GET("/cart", cartController.ViewCart)
			protectedApi.POST("/cart/items", cartController.AddToCart)
			protectedApi.PUT("/cart/items/:id", cartController.UpdateCartItem)
			protectedApi.DELETE("/cart/items/:id", cartController.RemoveCartItem)

			protectedApi.GET("/orders", orderController.ListMyOrders)
			protectedApi.POST("/orders/checkout", orderController.Checkout)
			protectedApi.GET("/orders/:id", orderController.GetOrder)
			protectedApi.POST("/orders/:id/pay", orderController.Pay)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.POST("/burgers", menuController.CreateBurger)
				adminApi.PUT("/burgers/:id", menuController.UpdateBurger)
				adminApi.POST("/burgers/:id/toggle-availability", menuController.ToggleAvailability)
				adminApi.DELETE("/burgers/:id", menuController.DeleteBurger)

				adminApi.GET("/ingredients", ingredientController.GetAllIngredients)
				adminApi.POST("/ingredients", ingredientController.CreateIngredient)
				adminApi.PUT("/ingredients/:id", ingredientController.UpdateIngredient)
				adminApi.POST("/ingredients/:id/toggle-availability", ingredientController.ToggleAvailability)
				adminApi.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)

				adminApi.GET("/orders", orderController.ListAllOrders)
				adminApi.PUT("/orders/:id/status", orderController.UpdateStatus)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-burger-api",
	})
}
