package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fellowship_backend/internal/config"
	"fellowship_backend/internal/email"
	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/internal/storage"
	"fellowship_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	storage storage.Storage
	mailer  email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	store storage.Storage,
	mailer email.Provider,
) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		storage: store,
		mailer:  mailer,
	}
}

// Create подает заявку студента. Одна заявка на пользователя.
// Email в анкете обязан совпадать с email аккаунта.
func (s *ApplicationService) Create(ctx context.Context, db *gorm.DB, userID, userEmail string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if normalizeEmail(req.Email) != normalizeEmail(userEmail) {
		return nil, apperrors.NewForbiddenError("Application email must match account email")
	}

	exists, err := s.appRepo.ExistsByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "application")
	}
	if exists {
		return nil, apperrors.ErrApplicationExists
	}

	app := &models.StudentApplication{
		UserID:           userID,
		FullName:         req.FullName,
		Pronouns:         req.Pronouns,
		GradYear:         req.GradYear,
		School:           req.School,
		Major:            req.Major,
		Email:            normalizeEmail(req.Email),
		LinkedinProfile:  req.LinkedinProfile,
		PortfolioWebsite: req.PortfolioWebsite,

		HowDidYouHear:  req.HowDidYouHear,
		ReferralSource: req.ReferralSource,

		RolePreferences: datatypes.JSONSlice[string](req.RolePreferences),

		StartupsAndIndustries:     req.StartupsAndIndustries,
		ContributionAndExperience: req.ContributionAndExperience,
		WorkMode:                  req.WorkMode,
		TimeCommitment:            req.TimeCommitment,
		IsUSCitizen:               req.IsUSCitizen,
		WorkAuthorization:         req.WorkAuthorization,

		AdditionalComments:          req.AdditionalComments,
		PreviouslyApplied:           req.PreviouslyApplied,
		PreviouslyParticipated:      req.PreviouslyParticipated,
		HasUpcomingInternshipOffers: req.HasUpcomingInternshipOffers,

		Term:        req.Term,
		Status:      models.ApplicationStatusSubmitted,
		SubmittedAt: time.Now(),
	}

	if err := s.appRepo.Create(db, app); err != nil {
		return nil, apperrors.ErrDatabase(err, "application")
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "term", app.Term)

	resp := dto.ToApplicationResponse(app)
	return &resp, nil
}

// GetMine возвращает заявку текущего студента
func (s *ApplicationService) GetMine(db *gorm.DB, userID string) (*dto.ApplicationResponse, error) {
	app, err := s.findByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToApplicationResponse(app)
	return &resp, nil
}

// GetByID возвращает заявку по id. Студент видит только свою,
// админ - любую.
func (s *ApplicationService) GetByID(db *gorm.DB, requesterID string, isAdmin bool, id string) (*dto.ApplicationResponse, error) {
	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && app.UserID != requesterID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	resp := dto.ToApplicationResponse(app)
	return &resp, nil
}

// List возвращает все заявки (только админ), отсортированные по дате подачи
func (s *ApplicationService) List(db *gorm.DB, filter repositories.ListFilter) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "application")
	}
	return dto.ToApplicationResponses(apps), nil
}

// UpdateStatus - админское решение по заявке. Переходы между статусами
// не ограничены. На accepted/rejected студенту уходит письмо (best-effort).
func (s *ApplicationService) UpdateStatus(ctx context.Context, db *gorm.DB, adminID, id string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	app.Status = req.Status
	app.ReviewedBy = adminID
	if req.ReviewNotes != "" {
		app.ReviewNotes = req.ReviewNotes
	}

	if err := s.appRepo.Update(db, app); err != nil {
		return nil, apperrors.ErrDatabase(err, "application")
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", app.ID,
		"status", string(app.Status),
		"reviewed_by", adminID,
	)

	if req.Status == models.ApplicationStatusAccepted || req.Status == models.ApplicationStatusRejected {
		if err := s.mailer.SendDecision(app.Email, app.FullName, app.Status); err != nil {
			// Решение уже записано, неудача SMTP не откатывает его
			logger.CtxWarn(ctx, "decision notification failed",
				"application_id", app.ID,
				"error", err.Error(),
			)
		}
	}

	resp := dto.ToApplicationResponse(app)
	return &resp, nil
}

// Delete удаляет заявку (только админ).
// Прикрепленное резюме удаляется из хранилища best-effort.
func (s *ApplicationService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	app, err := s.findByID(db, id)
	if err != nil {
		return err
	}

	if err := s.appRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound(err)
		}
		return apperrors.ErrDatabase(err, "application")
	}

	if app.ResumeKey != "" {
		if err := s.storage.Delete(ctx, app.ResumeKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete resume from storage",
				"application_id", app.ID,
				"key", app.ResumeKey,
				"error", err.Error(),
			)
		}
	}

	logger.CtxInfo(ctx, "application deleted", "application_id", app.ID)
	return nil
}

// UploadResume принимает PDF и привязывает его к заявке.
// Загрузить может владелец заявки или админ. Повторная загрузка
// заменяет предыдущий файл.
func (s *ApplicationService) UploadResume(ctx context.Context, db *gorm.DB, requesterID string, isAdmin bool, id, filename, contentType string, size int64, reader io.Reader) (*dto.ApplicationResponse, error) {
	cfg := config.GetConfig()

	if size > cfg.Upload.MaxResumeSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Resume exceeds the maximum size of %d bytes", cfg.Upload.MaxResumeSize),
		)
	}
	if !isPDF(filename, contentType) {
		return nil, apperrors.NewBadRequestError("Resume must be a PDF file")
	}

	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && app.UserID != requesterID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	oldKey := app.ResumeKey
	key := fmt.Sprintf("resumes/%s/resume-%s-%d.pdf", app.UserID, app.UserID, time.Now().UnixMilli())

	if err := s.storage.Save(ctx, key, reader, "application/pdf"); err != nil {
		return nil, apperrors.ErrExternalService(err, "application", "Failed to store resume")
	}

	app.ResumeKey = key
	if err := s.appRepo.Update(db, app); err != nil {
		return nil, apperrors.ErrDatabase(err, "application")
	}

	if oldKey != "" && oldKey != key {
		if err := s.storage.Delete(ctx, oldKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete replaced resume", "key", oldKey, "error", err.Error())
		}
	}

	logger.CtxInfo(ctx, "resume uploaded", "application_id", app.ID, "key", key)

	resp := dto.ToApplicationResponse(app)
	return &resp, nil
}

// GetResumeURL выдает временную подписанную ссылку на резюме.
// Ссылка выпускается заново при каждом вызове.
func (s *ApplicationService) GetResumeURL(ctx context.Context, db *gorm.DB, requesterID string, isAdmin bool, id string) (*dto.ResumeURLResponse, error) {
	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && app.UserID != requesterID {
		return nil, apperrors.ErrNotApplicationOwner
	}

	if app.ResumeKey == "" {
		return nil, apperrors.ErrResumeNotUploaded
	}

	expiry := time.Duration(config.GetConfig().Upload.SignedURLMinutes) * time.Minute
	url, err := s.storage.GetSignedURL(ctx, app.ResumeKey, expiry)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "application", "Failed to sign resume URL")
	}

	return &dto.ResumeURLResponse{
		SignedURL: url,
		ExpiresIn: int64(expiry.Seconds()),
	}, nil
}

func (s *ApplicationService) findByID(db *gorm.DB, id string) (*models.StudentApplication, error) {
	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "application")
	}
	return app, nil
}

func (s *ApplicationService) findByUserID(db *gorm.DB, userID string) (*models.StudentApplication, error) {
	app, err := s.appRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "application")
	}
	return app, nil
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(contentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
