package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// UpsertUser saves a user on login or records a role change request
// @Summary Upsert user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} models.User "Existing user"
// @Success 200 {object} models.UpdateResult "Write result"
// @Failure 400 {object} ErrorResponse
// @Router /user [put]
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req services.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	res, err := h.userService.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if res.User != nil {
		c.JSON(http.StatusOK, res.User)
		return
	}
	c.JSON(http.StatusOK, res.Result)
}

// GetUser returns the user or null
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Router /user/{email} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers lists every user, admin only
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser sets profile fields and refreshes the timestamp
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Router /users/update/{email} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	email := c.Param("email")
	h.LogRequest(c, "Updating user", "email", email)

	result, err := h.userService.Update(c.Request.Context(), email, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser deletes a user by id
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	result, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
