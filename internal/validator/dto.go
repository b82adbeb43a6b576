package validator

import (
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/payment"
)

// UpsertUserRequest is the body of PUT /user, sent on every login
type UpsertUserRequest struct {
	Email  string             `json:"email" validate:"required,email"`
	Name   string             `json:"name" validate:"omitempty,max=200"`
	Image  string             `json:"image" validate:"omitempty,max=2048"`
	Role   *models.UserRole   `json:"role" validate:"omitempty,user_role"`
	Status *models.UserStatus `json:"status" validate:"omitempty,user_status"`
}

// UpdateUserRequest is the body of PATCH /users/update/:email
type UpdateUserRequest struct {
	Name   *string            `json:"name" validate:"omitempty,max=200"`
	Image  *string            `json:"image" validate:"omitempty,max=2048"`
	Role   *models.UserRole   `json:"role" validate:"omitempty,user_role"`
	Status *models.UserStatus `json:"status" validate:"omitempty,user_status"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent
type PaymentIntentRequest struct {
	Price payment.Price `json:"price"`
}
