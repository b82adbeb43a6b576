package validator

import (
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/go-playground/validator/v10"
)

// BusinessValidator handles user profile rules beyond struct tags
type BusinessValidator struct {
	validate *validator.Validate
}

// ValidateUpsert validates the login-time upsert body
func (bv *BusinessValidator) ValidateUpsert(req *UpsertUserRequest) ValidationErrors {
	if err := bv.validate.Struct(req); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateUpdate validates a profile update and rejects empty bodies
func (bv *BusinessValidator) ValidateUpdate(req *UpdateUserRequest) ValidationErrors {
	var errors ValidationErrors
	if err := bv.validate.Struct(req); err != nil {
		errors = append(errors, ToValidationErrors(err)...)
	}

	if req.Name == nil && req.Image == nil && req.Role == nil && req.Status == nil {
		errors = append(errors, ValidationError{
			Field:   "request",
			Message: "at least one field must be provided",
			Rule:    "business_logic",
		})
	}
	return errors
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.RoleGuest, models.RoleModerator, models.RoleAdmin:
			return true
		}
		return false
	})

	bv.validate.RegisterValidation("user_status", func(fl validator.FieldLevel) bool {
		switch models.UserStatus(fl.Field().String()) {
		case models.StatusRequested, models.StatusVerified:
			return true
		}
		return false
	})
}
