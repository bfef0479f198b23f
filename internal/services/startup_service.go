package services

import (
	"context"
	"errors"
	"time"

	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StartupService struct {
	startupRepo repositories.StartupRepository
}

func NewStartupService(startupRepo repositories.StartupRepository) *StartupService {
	return &StartupService{startupRepo: startupRepo}
}

// Create подает интейк-форму компании. Одна форма на пользователя.
func (s *StartupService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	if !req.CommitmentAcknowledged {
		return nil, apperrors.NewBadRequestError("Commitment acknowledgement is required")
	}

	exists, err := s.startupRepo.ExistsByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "startup")
	}
	if exists {
		return nil, apperrors.ErrStartupExists
	}

	positions := make([]models.Position, 0, len(req.Positions))
	for _, p := range req.Positions {
		positions = append(positions, models.Position{
			RoleType:       p.RoleType,
			Description:    p.Description,
			RequiredSkills: p.RequiredSkills,
			TimeCommitment: p.TimeCommitment,
		})
	}

	startup := &models.Startup{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Industry:    req.Industry,
		Description: req.Description,
		Stage:       req.Stage,
		TeamSize:    req.TeamSize,
		FoundedYear: req.FoundedYear,

		ContactName:  req.ContactName,
		ContactTitle: req.ContactTitle,
		ContactEmail: normalizeEmail(req.ContactEmail),
		ContactPhone: req.ContactPhone,

		OperatingMode: req.OperatingMode,
		TimeZone:      req.TimeZone,

		InternsSupervisor:         req.InternsSupervisor,
		HasHiredInternsPreviously: req.HasHiredInternsPreviously,
		NumberOfInternsNeeded:     req.NumberOfInternsNeeded,
		Positions:                 datatypes.JSONSlice[models.Position](positions),
		WillPayInterns:            req.WillPayInterns,
		PayAmount:                 req.PayAmount,
		LookingForPermanentIntern: req.LookingForPermanentIntern,
		ProjectDescriptionURL:     req.ProjectDescriptionURL,

		ReferralSource: req.ReferralSource,

		CommitmentAcknowledged: req.CommitmentAcknowledged,

		Term:        req.Term,
		Status:      models.StartupStatusSubmitted,
		SubmittedAt: time.Now(),
	}

	if err := s.startupRepo.Create(db, startup); err != nil {
		return nil, apperrors.ErrDatabase(err, "startup")
	}

	logger.CtxInfo(ctx, "startup intake submitted", "startup_id", startup.ID, "company", startup.CompanyName)

	resp := dto.ToStartupResponse(startup)
	return &resp, nil
}

// GetMine возвращает интейк-форму текущей компании
func (s *StartupService) GetMine(db *gorm.DB, userID string) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrStartupNotFound) {
			return nil, apperrors.ErrStartupNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "startup")
	}

	resp := dto.ToStartupResponse(startup)
	return &resp, nil
}

// GetByID возвращает интейк-форму по id. Компания видит только свою,
// админ - любую.
func (s *StartupService) GetByID(db *gorm.DB, requesterID string, isAdmin bool, id string) (*dto.StartupResponse, error) {
	startup, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && startup.UserID != requesterID {
		return nil, apperrors.ErrNotStartupOwner
	}

	resp := dto.ToStartupResponse(startup)
	return &resp, nil
}

// List возвращает все интейк-формы (только админ)
func (s *StartupService) List(db *gorm.DB, filter repositories.ListFilter) ([]dto.StartupResponse, error) {
	startups, err := s.startupRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "startup")
	}
	return dto.ToStartupResponses(startups), nil
}

// UpdateStatus - админское решение по интейк-форме
func (s *StartupService) UpdateStatus(ctx context.Context, db *gorm.DB, adminID, id string, req *dto.UpdateStartupStatusRequest) (*dto.StartupResponse, error) {
	startup, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	startup.Status = req.Status
	startup.ReviewedBy = adminID
	if req.ReviewNotes != "" {
		startup.ReviewNotes = req.ReviewNotes
	}

	if err := s.startupRepo.Update(db, startup); err != nil {
		return nil, apperrors.ErrDatabase(err, "startup")
	}

	logger.CtxInfo(ctx, "startup status updated",
		"startup_id", startup.ID,
		"status", string(startup.Status),
		"reviewed_by", adminID,
	)

	resp := dto.ToStartupResponse(startup)
	return &resp, nil
}

// Delete удаляет интейк-форму (только админ)
func (s *StartupService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	startup, err := s.findByID(db, id)
	if err != nil {
		return err
	}

	if err := s.startupRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrStartupNotFound) {
			return apperrors.ErrStartupNotFound(err)
		}
		return apperrors.ErrDatabase(err, "startup")
	}

	logger.CtxInfo(ctx, "startup intake deleted", "startup_id", startup.ID)
	return nil
}

func (s *StartupService) findByID(db *gorm.DB, id string) (*models.Startup, error) {
	startup, err := s.startupRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStartupNotFound) {
			return nil, apperrors.ErrStartupNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "startup")
	}
	return startup, nil
}
