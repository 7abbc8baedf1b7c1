package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"telia-restaurant/config"
	"telia-restaurant/models"
	"telia-restaurant/repositories"
)

type MenuController struct {
	menuRepo *repositories.MenuRepository
}

func NewMenuController(menuRepo *repositories.MenuRepository) *MenuController {
	return &MenuController{menuRepo: menuRepo}
}

func menuCacheKey(category string) string {
	if category == "" {
		return "menu_list_all"
	}
	return "menu_list_" + category
}

func invalidateMenuCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "menu_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetMenu godoc
// @Summary Get menu
// @Description List available menu items, optionally filtered to one category, ordered by name
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	category := c.Query("category")
	cacheKey := menuCacheKey(category)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	items, err := ctrl.menuRepo.ListAvailable(ctx, category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load menu", "error": err.Error()})
		return
	}

	response := gin.H{"success": true, "message": "Menu retrieved", "data": items}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetCategories godoc
// @Summary Get menu categories
// @Description List the categories that currently have available items
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menuRepo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load categories", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description Add an item to the catalog (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item := &models.MenuItem{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		IsAvailable: true,
	}
	if req.Description != "" {
		item.Description = &req.Description
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.menuRepo.Create(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu item", "error": err.Error()})
		return
	}

	invalidateMenuCache()

	c.JSON(201, gin.H{"success": true, "message": "Menu item created", "data": item})
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Description Update item fields, including availability (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	item, err := ctrl.menuRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrMenuItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load menu item", "error": err.Error()})
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.menuRepo.Update(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item", "error": err.Error()})
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated", "data": item})
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Description Remove an item from the catalog (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.menuRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrMenuItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete menu item", "error": err.Error()})
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu item deleted"})
}
