package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"telia-restaurant/config"
	_ "telia-restaurant/docs"
	"telia-restaurant/messaging"
	"telia-restaurant/middleware"
	"telia-restaurant/models"
	"telia-restaurant/repositories"
	"telia-restaurant/routes"
	"telia-restaurant/services"
)

// @title Telia Restaurant API
// @version 1.0
// @description Ordering backend for Telia Restaurant: menu, cart, checkout and admin order tracking.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	carts := services.NewCartService(config.AppConfig.CartTTL)
	carts.StartJanitor(ctx, 10*time.Minute)

	orders := services.NewOrderService(
		repositories.NewCustomerRepository(),
		repositories.NewOrderRepository(),
	)

	if mailer, err := models.NewEmailService(); err != nil {
		log.Println("Order confirmation emails disabled:", err)
	} else {
		orders.Mailer = mailer
	}

	if config.AppConfig.RabbitMQURL != "" {
		publisher, err := messaging.NewPublisher(config.AppConfig.RabbitMQURL)
		if err != nil {
			log.Println("Kitchen events disabled:", err)
		} else {
			defer publisher.Close()
			orders.Publisher = publisher
		}
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, carts, orders)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
