package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"telia-restaurant/controllers"
	"telia-restaurant/middleware"
	"telia-restaurant/repositories"
	"telia-restaurant/services"
)

func SetupRoutes(router *gin.Engine, carts *services.CartService, orders *services.OrderService) {
	menuRepo := repositories.NewMenuRepository()

	authCtrl := &controllers.AuthController{}
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(carts, menuRepo)
	orderCtrl := controllers.NewOrderController(carts, orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/auth/session", middleware.OptionalAuthMiddleware(), authCtrl.GetSession)

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/categories", menuCtrl.GetCategories)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)

	router.POST("/orders", orderCtrl.Checkout)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)
	}
}
