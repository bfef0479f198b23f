package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fellowship_backend/internal/middleware"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	*BaseHandler
	exportService *services.ExportService
}

func NewExportHandler(base *BaseHandler, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   base,
		exportService: exportService,
	}
}

// RegisterRoutes регистрирует маршруты экспорта (только админ)
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	export := rg.Group("/export")
	export.Use(middleware.AuthMiddleware())
	export.Use(middleware.AdminMiddleware())
	{
		export.GET("/students.csv", h.StudentsCSV)
		export.GET("/students.json", h.StudentsJSON)
		export.GET("/startups.csv", h.StartupsCSV)
		export.GET("/startups.json", h.StartupsJSON)
	}
}

func (h *ExportHandler) StudentsCSV(c *gin.Context) {
	db := h.GetDB(c)

	setAttachmentHeaders(c, "students", "csv")
	if err := h.exportService.StudentsCSV(db, exportFilter(c), c.Writer); err != nil {
		h.HandleServiceError(c, err)
		return
	}
}

func (h *ExportHandler) StudentsJSON(c *gin.Context) {
	db := h.GetDB(c)

	setAttachmentHeaders(c, "students", "json")
	if err := h.exportService.StudentsJSON(db, exportFilter(c), c.Writer); err != nil {
		h.HandleServiceError(c, err)
		return
	}
}

func (h *ExportHandler) StartupsCSV(c *gin.Context) {
	db := h.GetDB(c)

	setAttachmentHeaders(c, "startups", "csv")
	if err := h.exportService.StartupsCSV(db, exportFilter(c), c.Writer); err != nil {
		h.HandleServiceError(c, err)
		return
	}
}

func (h *ExportHandler) StartupsJSON(c *gin.Context) {
	db := h.GetDB(c)

	setAttachmentHeaders(c, "startups", "json")
	if err := h.exportService.StartupsJSON(db, exportFilter(c), c.Writer); err != nil {
		h.HandleServiceError(c, err)
		return
	}
}

func exportFilter(c *gin.Context) repositories.ListFilter {
	return repositories.ListFilter{
		Status: c.Query("status"),
		Term:   c.Query("term"),
	}
}

func setAttachmentHeaders(c *gin.Context, name, ext string) {
	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().UTC().Format("2006-01-02"), ext)

	contentType := "application/json"
	if ext == "csv" {
		contentType = "text/csv"
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}
