package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

// SubmissionHandler serves applications or reviews, depending on the
// service it is built with.
type SubmissionHandler struct {
	BaseHandler
	service services.SubmissionService
}

func NewSubmissionHandler(service services.SubmissionService, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	doc, ok := h.bindDocument(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Creating submission", "caller", c.GetString(ContextUserEmail))
	result, err := h.service.Create(c.Request.Context(), doc)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	patch, ok := h.bindDocument(c)
	if !ok {
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SubmissionHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ListByEmail matches userData.email against the path parameter
func (h *SubmissionHandler) ListByEmail(c *gin.Context) {
	docs, err := h.service.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
