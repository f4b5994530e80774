package main

import (
	"log"
	"net/http"
	"os"

	"storefront/config"
	"storefront/controllers"
	"storefront/jobs"
	"storefront/models"
	"storefront/routes"
	"storefront/services"
	"storefront/services/logger"
	"storefront/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Tenant{},
		&models.DeliveryZone{},
		&models.Topping{},
		&models.ToppingVariantPrice{},
		&models.Discount{},
		&models.Order{},
		&models.OrderLine{},
		&models.OrderLineTopping{},
		&models.OrderCounter{},
		&models.TenantRevenue{},
		&models.Notification{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	dispatcher := notification.NewService(config.DB, m, appLogger)
	orderService := services.NewOrderService(config.DB, services.NewCatalogToppingPricer(config.DB))

	controllers.SetCheckoutFacade(services.NewCheckoutFacade(config.DB, m, appLogger))
	jobs.SetOrphanOrderFinder(orderService)
	jobs.SetReconcileDispatcher(dispatcher)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
