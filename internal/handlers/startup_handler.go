package handlers

import (
	"net/http"

	"fellowship_backend/internal/middleware"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type StartupHandler struct {
	*BaseHandler
	startupService *services.StartupService
}

func NewStartupHandler(base *BaseHandler, startupService *services.StartupService) *StartupHandler {
	return &StartupHandler{
		BaseHandler:    base,
		startupService: startupService,
	}
}

// RegisterRoutes регистрирует маршруты интейк-форм стартапов
func (h *StartupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	startups := rg.Group("/startups")
	startups.Use(middleware.AuthMiddleware())
	{
		startups.POST("/intake", middleware.RequireUserTypes(models.UserTypeStartup), h.Create)
		startups.GET("", h.List)
		startups.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/startups")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.PATCH("/:id", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *StartupHandler) Create(c *gin.Context) {
	var req dto.CreateStartupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.startupService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List отдает админу все интейк-формы с фильтрами, компании - ее собственную
func (h *StartupHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	if identity.IsAdmin() {
		filter := repositories.ListFilter{
			Status: c.Query("status"),
			Term:   c.Query("term"),
		}

		responses, err := h.startupService.List(db, filter)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, responses)
		return
	}

	response, err := h.startupService.GetMine(db, identity.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, []dto.StartupResponse{*response})
}

func (h *StartupHandler) GetByID(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	response, err := h.startupService.GetByID(db, identity.UserID, identity.IsAdmin(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *StartupHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStartupStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.startupService.UpdateStatus(c.Request.Context(), db, adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *StartupHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.startupService.Delete(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
