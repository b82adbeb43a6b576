package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportApplications downloads every application as XLSX, admin only
// @Summary Export applications
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /applied/export [get]
func (h *ExportHandler) ExportApplications(c *gin.Context) {
	h.writeExport(c, "applications", h.exportService.ExportApplications)
}

// ExportScholarships downloads every scholarship as XLSX, admin only
// @Summary Export scholarships
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /scholarships/export [get]
func (h *ExportHandler) ExportScholarships(c *gin.Context) {
	h.writeExport(c, "scholarships", h.exportService.ExportScholarships)
}

// writeExport buffers the workbook so a failure can still produce a JSON error
func (h *ExportHandler) writeExport(c *gin.Context, name string, export func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := export(c.Request.Context(), &buf); err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
