package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"telia-restaurant/config"
	"telia-restaurant/models"
	"telia-restaurant/utils"
)

type AuthController struct{}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var exists int
	config.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM users WHERE email=$1", req.Email).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}
	now := time.Now()

	var userID int
	err = config.DB.QueryRow(context.Background(),
		"INSERT INTO users (email, password, role, full_name, phone, created_at, updated_at) VALUES ($1,$2,'customer',$3,$4,$5,$6) RETURNING id",
		req.Email, hash, req.FullName, req.Phone, now, now).Scan(&userID)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	token, _ := utils.GenerateToken(userID, req.Email, "customer")

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":        userID,
				"email":     req.Email,
				"role":      "customer",
				"full_name": req.FullName,
				"phone":     req.Phone,
			},
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var user models.User
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, email, password, role, COALESCE(full_name,''), COALESCE(phone,'') FROM users WHERE email=$1",
		req.Email).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.FullName, &user.Phone)

	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Email, user.Role)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":        user.ID,
				"email":     user.Email,
				"role":      user.Role,
				"full_name": user.FullName,
				"phone":     user.Phone,
			},
		},
	})
}

// GetSession godoc
// @Summary Current session
// @Description Returns the authenticated user for a Bearer token, or authenticated=false. Never responds 401.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(200, models.SessionResponse{Authenticated: false})
		return
	}

	var user models.User
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, email, role, COALESCE(full_name,''), COALESCE(phone,''), created_at FROM users WHERE id=$1",
		userID).Scan(&user.ID, &user.Email, &user.Role, &user.FullName, &user.Phone, &user.CreatedAt)
	if err != nil {
		// Token was valid but the user row is gone; treat as signed out.
		c.JSON(200, models.SessionResponse{Authenticated: false})
		return
	}

	c.JSON(200, models.SessionResponse{Authenticated: true, User: &user})
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; the client discards its copy. Always succeeds.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}
