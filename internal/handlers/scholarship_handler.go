package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

type ScholarshipHandler struct {
	BaseHandler
	scholarshipService services.ScholarshipService
}

func NewScholarshipHandler(scholarshipService services.ScholarshipService, logger utils.Logger) *ScholarshipHandler {
	return &ScholarshipHandler{
		BaseHandler:        NewBaseHandler(logger),
		scholarshipService: scholarshipService,
	}
}

// ListAll returns every scholarship
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} models.Document
// @Router /scholarships [get]
func (h *ScholarshipHandler) ListAll(c *gin.Context) {
	docs, err := h.scholarshipService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Search returns one page of scholarships whose name contains search
// @Summary Paginated scholarship listing
// @Tags scholarships
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 8)"
// @Param search query string false "Name substring, case-insensitive"
// @Success 200 {array} models.Document
// @Router /scholarship [get]
func (h *ScholarshipHandler) Search(c *gin.Context) {
	filters := repositories.NewScholarshipFilters(c.Query("page"), c.Query("size"), c.Query("search"))

	docs, err := h.scholarshipService.Search(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Count returns how many scholarships match search
// @Summary Count matching scholarships
// @Tags scholarships
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Success 200 {object} models.CountResponse
// @Router /jobs-count [get]
func (h *ScholarshipHandler) Count(c *gin.Context) {
	count, err := h.scholarshipService.Count(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

// Get returns one scholarship or null
// @Summary Get scholarship
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship id"
// @Success 200 {object} models.Document
// @Failure 400 {object} ErrorResponse
// @Router /scholarship/{id} [get]
func (h *ScholarshipHandler) Get(c *gin.Context) {
	doc, err := h.scholarshipService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create stores a new scholarship
// @Summary Add scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} ErrorResponse
// @Router /add-scholarship [post]
func (h *ScholarshipHandler) Create(c *gin.Context) {
	doc, ok := h.bindDocument(c)
	if !ok {
		return
	}

	result, err := h.scholarshipService.Create(c.Request.Context(), doc)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Update applies the body with $set semantics
// @Summary Update scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Param id path string true "Scholarship id"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /scholarship/update/{id} [put]
func (h *ScholarshipHandler) Update(c *gin.Context) {
	patch, ok := h.bindDocument(c)
	if !ok {
		return
	}

	result, err := h.scholarshipService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete removes a scholarship, admin only
// @Summary Delete scholarship
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship id"
// @Success 200 {object} models.DeleteResult
// @Failure 401 {object} ErrorResponse
// @Router /scholarship/{id} [delete]
func (h *ScholarshipHandler) Delete(c *gin.Context) {
	result, err := h.scholarshipService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
