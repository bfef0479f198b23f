package services

import (
	"context"
	"errors"

	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InterviewService struct {
	interviewRepo repositories.InterviewRepository
	appRepo       repositories.ApplicationRepository
}

func NewInterviewService(interviewRepo repositories.InterviewRepository, appRepo repositories.ApplicationRepository) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
	}
}

// Create записывает оценку интервью по заявке. Не больше одного интервью
// на заявку. Статус заявки при этом не меняется.
func (s *InterviewService) Create(ctx context.Context, db *gorm.DB, interviewerID, applicationID string, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	if _, err := s.appRepo.FindByID(db, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "interview")
	}

	exists, err := s.interviewRepo.ExistsByApplicationID(db, applicationID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "interview")
	}
	if exists {
		return nil, apperrors.ErrInterviewExists
	}

	interview := &models.Interview{
		ApplicationID:   applicationID,
		InterviewerID:   interviewerID,
		InterviewerName: req.InterviewerName,
		InterviewDate:   req.InterviewDate,

		TechnicalScore:     req.TechnicalScore,
		CommunicationScore: req.CommunicationScore,
		MotivationScore:    req.MotivationScore,
		CultureFitScore:    req.CultureFitScore,

		Strengths: req.Strengths,
		Concerns:  req.Concerns,
		Notes:     req.Notes,

		Recommendation: req.Recommendation,
	}
	interview.CalculateOverallScore()

	if err := s.interviewRepo.Create(db, interview); err != nil {
		return nil, apperrors.ErrDatabase(err, "interview")
	}

	logger.CtxInfo(ctx, "interview recorded",
		"interview_id", interview.ID,
		"application_id", applicationID,
		"overall_score", interview.OverallScore,
	)

	resp := dto.ToInterviewResponse(interview)
	return &resp, nil
}

// Get возвращает интервью по id заявки
func (s *InterviewService) Get(db *gorm.DB, applicationID string) (*dto.InterviewResponse, error) {
	interview, err := s.findByApplicationID(db, applicationID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToInterviewResponse(interview)
	return &resp, nil
}

// Update частично обновляет интервью. Итоговый балл пересчитывается,
// если тронута хотя бы одна под-оценка.
func (s *InterviewService) Update(ctx context.Context, db *gorm.DB, applicationID string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	interview, err := s.findByApplicationID(db, applicationID)
	if err != nil {
		return nil, err
	}

	if req.InterviewerName != nil {
		interview.InterviewerName = *req.InterviewerName
	}
	if req.InterviewDate != nil {
		interview.InterviewDate = req.InterviewDate
	}

	scoresChanged := false
	if req.TechnicalScore != nil {
		interview.TechnicalScore = *req.TechnicalScore
		scoresChanged = true
	}
	if req.CommunicationScore != nil {
		interview.CommunicationScore = *req.CommunicationScore
		scoresChanged = true
	}
	if req.MotivationScore != nil {
		interview.MotivationScore = *req.MotivationScore
		scoresChanged = true
	}
	if req.CultureFitScore != nil {
		interview.CultureFitScore = *req.CultureFitScore
		scoresChanged = true
	}
	if scoresChanged {
		interview.CalculateOverallScore()
	}

	if req.Strengths != nil {
		interview.Strengths = *req.Strengths
	}
	if req.Concerns != nil {
		interview.Concerns = *req.Concerns
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}
	if req.Recommendation != nil {
		interview.Recommendation = *req.Recommendation
	}

	if err := s.interviewRepo.Update(db, interview); err != nil {
		return nil, apperrors.ErrDatabase(err, "interview")
	}

	logger.CtxInfo(ctx, "interview updated",
		"interview_id", interview.ID,
		"application_id", applicationID,
	)

	resp := dto.ToInterviewResponse(interview)
	return &resp, nil
}

func (s *InterviewService) findByApplicationID(db *gorm.DB, applicationID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByApplicationID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "interview")
	}
	return interview, nil
}
