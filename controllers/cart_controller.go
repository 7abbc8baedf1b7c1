package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"telia-restaurant/config"
	"telia-restaurant/models"
	"telia-restaurant/repositories"
	"telia-restaurant/services"
)

const cartSessionCookie = "cart_session"

type CartController struct {
	carts    *services.CartService
	menuRepo *repositories.MenuRepository
}

func NewCartController(carts *services.CartService, menuRepo *repositories.MenuRepository) *CartController {
	return &CartController{carts: carts, menuRepo: menuRepo}
}

// sessionCart resolves the caller's cart from the session cookie (or the
// X-Cart-Session header for cookie-less clients), minting a token on first
// touch. The token is opaque and carries no identity.
func (ctrl *CartController) sessionCart(c *gin.Context) *models.Cart {
	sessionID, err := c.Cookie(cartSessionCookie)
	if err != nil || sessionID == "" {
		sessionID = c.GetHeader("X-Cart-Session")
	}
	if sessionID == "" {
		sessionID = ctrl.carts.NewSessionID()
	}

	maxAge := int(config.AppConfig.CartTTL.Seconds())
	c.SetCookie(cartSessionCookie, sessionID, maxAge, "/", "", false, true)
	c.Header("X-Cart-Session", sessionID)

	return ctrl.carts.GetOrCreate(sessionID)
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"items": cart.Lines(),
		"total": cart.Total(),
		"count": cart.Len(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Current session's cart lines and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(cart)})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Adds one unit of a menu item; repeated adds accumulate quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// Name, category and price always come from the catalog, never from
	// the client.
	item, err := ctrl.menuRepo.GetAvailableByID(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, models.ErrMenuItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to look up menu item", "error": err.Error()})
		return
	}

	cart := ctrl.sessionCart(c)
	cart.AddItem(*item)

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(cart)})
}

// UpdateItem godoc
// @Summary Update cart line quantity
// @Description Sets the quantity of a line; zero or less removes it. Unknown ids are a no-op.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.sessionCart(c)
	cart.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(cart)})
}

// RemoveItem godoc
// @Summary Remove cart line
// @Description Removes a line if present; no-op otherwise
// @Tags Cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	cart.RemoveItem(c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": cartPayload(cart)})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Empties the session's cart unconditionally
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	cart.Clear()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(cart)})
}
