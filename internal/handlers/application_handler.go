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

type ApplicationHandler struct {
	*BaseHandler
	appService       *services.ApplicationService
	interviewService *services.InterviewService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService, interviewService *services.InterviewService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:      base,
		appService:       appService,
		interviewService: interviewService,
	}
}

// RegisterRoutes регистрирует маршруты заявок и интервью
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/students/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", middleware.RequireUserTypes(models.UserTypeStudent), h.Create)
		apps.GET("", h.List)
		apps.GET("/:id", h.GetByID)
		apps.POST("/:id/resume", h.UploadResume)
		apps.GET("/:id/resume", h.GetResumeURL)
	}

	admin := rg.Group("/students/applications")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.PATCH("/:id", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)

		admin.POST("/:id/interview", h.CreateInterview)
		admin.GET("/:id/interview", h.GetInterview)
		admin.PATCH("/:id/interview", h.UpdateInterview)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	response, err := h.appService.Create(c.Request.Context(), db, identity.UserID, identity.Email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List отдает админу все заявки с фильтрами, студенту - его собственную
func (h *ApplicationHandler) List(c *gin.Context) {
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

		responses, err := h.appService.List(db, filter)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, responses)
		return
	}

	response, err := h.appService.GetMine(db, identity.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, []dto.ApplicationResponse{*response})
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	response, err := h.appService.GetByID(db, identity.UserID, identity.IsAdmin(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.appService.UpdateStatus(c.Request.Context(), db, adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.appService.Delete(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadResume принимает multipart-форму с полем "file"
func (h *ApplicationHandler) UploadResume(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'file' field in multipart form"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	db := h.GetDB(c)

	response, err := h.appService.UploadResume(
		c.Request.Context(), db,
		identity.UserID, identity.IsAdmin(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) GetResumeURL(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	response, err := h.appService.GetResumeURL(c.Request.Context(), db, identity.UserID, identity.IsAdmin(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) CreateInterview(c *gin.Context) {
	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.interviewService.Create(c.Request.Context(), db, interviewerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ApplicationHandler) GetInterview(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.interviewService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) UpdateInterview(c *gin.Context) {
	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.interviewService.Update(c.Request.Context(), db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
