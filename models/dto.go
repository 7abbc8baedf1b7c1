package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ItemID string `json:"item_id" form:"item_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" form:"customer_name"`
	CustomerEmail   string `json:"customer_email" form:"customer_email" binding:"omitempty,email"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	DeliveryAddress string `json:"delivery_address" form:"delivery_address"`
	Notes           string `json:"notes" form:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type CreateMenuItemRequest struct {
	ID          string  `json:"id" form:"id" binding:"required"`
	Name        string  `json:"name" form:"name" binding:"required,min=2"`
	Category    string  `json:"category" form:"category" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Description string  `json:"description" form:"description"`
	IsAvailable *bool   `json:"is_available" form:"is_available"`
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name" form:"name"`
	Category    string   `json:"category" form:"category"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description" form:"description"`
	IsAvailable *bool    `json:"is_available" form:"is_available"`
}

type CheckoutResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
}
