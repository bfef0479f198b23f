package dto

import (
	"time"

	"fellowship_backend/internal/models"
)

// CreateInterviewRequest - оценка интервью по четырем критериям, шкала 1-10
type CreateInterviewRequest struct {
	InterviewerName string     `json:"interviewerName" validate:"required,max=255"`
	InterviewDate   *time.Time `json:"interviewDate" validate:"omitempty"`

	TechnicalScore     int `json:"technicalScore" validate:"required,min=1,max=10"`
	CommunicationScore int `json:"communicationScore" validate:"required,min=1,max=10"`
	MotivationScore    int `json:"motivationScore" validate:"required,min=1,max=10"`
	CultureFitScore    int `json:"cultureFitScore" validate:"required,min=1,max=10"`

	Strengths string `json:"strengths" validate:"omitempty,max=2000"`
	Concerns  string `json:"concerns" validate:"omitempty,max=2000"`
	Notes     string `json:"notes" validate:"omitempty,max=4000"`

	Recommendation models.Recommendation `json:"recommendation" validate:"required,oneof=STRONG_YES YES MAYBE NO"`
}

// UpdateInterviewRequest - частичное обновление; nil-поля не трогаются
type UpdateInterviewRequest struct {
	InterviewerName *string    `json:"interviewerName" validate:"omitempty,max=255"`
	InterviewDate   *time.Time `json:"interviewDate" validate:"omitempty"`

	TechnicalScore     *int `json:"technicalScore" validate:"omitempty,min=1,max=10"`
	CommunicationScore *int `json:"communicationScore" validate:"omitempty,min=1,max=10"`
	MotivationScore    *int `json:"motivationScore" validate:"omitempty,min=1,max=10"`
	CultureFitScore    *int `json:"cultureFitScore" validate:"omitempty,min=1,max=10"`

	Strengths *string `json:"strengths" validate:"omitempty,max=2000"`
	Concerns  *string `json:"concerns" validate:"omitempty,max=2000"`
	Notes     *string `json:"notes" validate:"omitempty,max=4000"`

	Recommendation *models.Recommendation `json:"recommendation" validate:"omitempty,oneof=STRONG_YES YES MAYBE NO"`
}

type InterviewResponse struct {
	ID              string     `json:"id"`
	ApplicationID   string     `json:"applicationId"`
	InterviewerID   string     `json:"interviewerId"`
	InterviewerName string     `json:"interviewerName"`
	InterviewDate   *time.Time `json:"interviewDate,omitempty"`

	TechnicalScore     int     `json:"technicalScore"`
	CommunicationScore int     `json:"communicationScore"`
	MotivationScore    int     `json:"motivationScore"`
	CultureFitScore    int     `json:"cultureFitScore"`
	OverallScore       float64 `json:"overallScore"`

	Strengths string `json:"strengths,omitempty"`
	Concerns  string `json:"concerns,omitempty"`
	Notes     string `json:"notes,omitempty"`

	Recommendation models.Recommendation `json:"recommendation"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func ToInterviewResponse(interview *models.Interview) InterviewResponse {
	return InterviewResponse{
		ID:              interview.ID,
		ApplicationID:   interview.ApplicationID,
		InterviewerID:   interview.InterviewerID,
		InterviewerName: interview.InterviewerName,
		InterviewDate:   interview.InterviewDate,

		TechnicalScore:     interview.TechnicalScore,
		CommunicationScore: interview.CommunicationScore,
		MotivationScore:    interview.MotivationScore,
		CultureFitScore:    interview.CultureFitScore,
		OverallScore:       interview.OverallScore,

		Strengths: interview.Strengths,
		Concerns:  interview.Concerns,
		Notes:     interview.Notes,

		Recommendation: interview.Recommendation,
		CreatedAt:      interview.CreatedAt,
		UpdatedAt:      interview.UpdatedAt,
	}
}
