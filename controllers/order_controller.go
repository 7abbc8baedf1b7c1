package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"telia-restaurant/models"
	"telia-restaurant/services"
)

type OrderController struct {
	carts  *services.CartService
	orders *services.OrderService
}

func NewOrderController(carts *services.CartService, orders *services.OrderService) *OrderController {
	return &OrderController{carts: carts, orders: orders}
}

func (ctrl *OrderController) sessionCart(c *gin.Context) *models.Cart {
	sessionID, err := c.Cookie(cartSessionCookie)
	if err != nil || sessionID == "" {
		sessionID = c.GetHeader("X-Cart-Session")
	}
	if sessionID == "" {
		// No session yet means an empty cart; checkout will reject it.
		sessionID = ctrl.carts.NewSessionID()
	}
	return ctrl.carts.GetOrCreate(sessionID)
}

// Checkout godoc
// @Summary Submit order
// @Description Creates an order from the session cart. Requires customer name and phone; email is optional and reuses an existing customer record on exact match.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Customer details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	cart := ctrl.sessionCart(c)

	result, err := ctrl.orders.Submit(c.Request.Context(), cart, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		case errors.Is(err, models.ErrMissingCustomerInfo):
			c.JSON(400, gin.H{"success": false, "message": "Customer name and phone number are required"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to submit order", "error": err.Error()})
		}
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": result})
}

// GetAllOrders godoc
// @Summary List orders
// @Description All orders newest-first with their items, optionally filtered by status ("all" or absent lists everything) (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter" Enums(all, pending, confirmed, preparing, ready, delivered, cancelled)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	statusFilter := c.DefaultQuery("status", models.OrderStatusAll)

	orders, err := ctrl.orders.ListOrders(c.Request.Context(), statusFilter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidOrderStatus) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status filter"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Sets an order's status to any value of the closed enumeration; no transition rules apply (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	orderID := c.Param("id")

	err := ctrl.orders.SetStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOrderStatus):
			c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		case errors.Is(err, models.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data":    gin.H{"id": orderID, "status": req.Status},
	})
}
