package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
	"github.com/Alamin4D/battle-server-website/internal/validator"
)

type ErrorResponse = models.ErrorResponse

// BaseHandler carries the logger shared by every handler
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) log(c *gin.Context) utils.Logger {
	return utils.GetLogger(c, h.logger)
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	h.log(c).Debug(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	h.log(c).Error(msg, append([]any{"error", err}, args...)...)
}

// bindDocument decodes a JSON object body into a schemaless document
func (h *BaseHandler) bindDocument(c *gin.Context) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		details := "request body must be a JSON object"
		if err != nil {
			details = err.Error()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: details,
		})
		return nil, false
	}
	return doc, true
}

// handleServiceError maps service and repository errors to HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Validation failed", Details: verrs})
	case repositories.IsInvalidIDError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid id", Details: err.Error()})
	case errors.Is(err, services.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid price", Details: err.Error()})
	case errors.Is(err, services.ErrMissingEmail), errors.Is(err, services.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "forbidden access"})
	case repositories.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not found"})
	case errors.Is(err, services.ErrPaymentUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: err.Error()})
	default:
		h.LogError(c, err, "Request failed", "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
