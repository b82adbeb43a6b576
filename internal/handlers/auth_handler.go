package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	tokenService services.TokenService
}

func NewAuthHandler(tokenService services.TokenService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  NewBaseHandler(logger),
		tokenService: tokenService,
	}
}

// IssueToken signs the posted claims into a one hour token
// @Summary Issue identity token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claims services.Claims
	if err := c.ShouldBindJSON(&claims); err != nil || claims == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request payload"})
		return
	}

	token, err := h.tokenService.Issue(claims)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	tokensIssuedTotal.Inc()
	h.LogRequest(c, "Token issued", "email", claims.Email())
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
