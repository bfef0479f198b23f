package dto

import (
	"time"

	"fellowship_backend/internal/models"
)

// CreateApplicationRequest - анкета студента целиком
type CreateApplicationRequest struct {
	FullName         string `json:"fullName" validate:"required,max=255"`
	Pronouns         string `json:"pronouns" validate:"omitempty,max=50"`
	GradYear         string `json:"gradYear" validate:"required,max=10"`
	School           string `json:"school" validate:"required,max=255"`
	Major            string `json:"major" validate:"required,max=255"`
	Email            string `json:"email" validate:"required,email"`
	LinkedinProfile  string `json:"linkedinProfile" validate:"omitempty,url"`
	PortfolioWebsite string `json:"portfolioWebsite" validate:"omitempty,url"`

	HowDidYouHear  string `json:"howDidYouHear" validate:"omitempty,max=500"`
	ReferralSource string `json:"referralSource" validate:"omitempty,max=255"`

	RolePreferences []string `json:"rolePreferences" validate:"required,min=1,dive,max=100"`

	StartupsAndIndustries     string `json:"startupsAndIndustries" validate:"omitempty,max=2000"`
	ContributionAndExperience string `json:"contributionAndExperience" validate:"omitempty,max=2000"`
	WorkMode                  string `json:"workMode" validate:"required,max=50"`
	TimeCommitment            string `json:"timeCommitment" validate:"required,max=100"`
	IsUSCitizen               string `json:"isUSCitizen" validate:"required,max=50"`
	WorkAuthorization         string `json:"workAuthorization" validate:"omitempty,max=255"`

	AdditionalComments          string `json:"additionalComments" validate:"omitempty,max=2000"`
	PreviouslyApplied           bool   `json:"previouslyApplied"`
	PreviouslyParticipated      bool   `json:"previouslyParticipated"`
	HasUpcomingInternshipOffers bool   `json:"hasUpcomingInternshipOffers"`

	Term string `json:"term" validate:"required,max=50"`
}

// UpdateApplicationStatusRequest - админское решение по заявке
type UpdateApplicationStatusRequest struct {
	Status      models.ApplicationStatus `json:"status" validate:"required,oneof=submitted under_review accepted rejected"`
	ReviewNotes string                   `json:"reviewNotes" validate:"omitempty,max=2000"`
}

type ApplicationResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	FullName         string `json:"fullName"`
	Pronouns         string `json:"pronouns,omitempty"`
	GradYear         string `json:"gradYear,omitempty"`
	School           string `json:"school,omitempty"`
	Major            string `json:"major,omitempty"`
	Email            string `json:"email"`
	LinkedinProfile  string `json:"linkedinProfile,omitempty"`
	PortfolioWebsite string `json:"portfolioWebsite,omitempty"`

	HowDidYouHear  string `json:"howDidYouHear,omitempty"`
	ReferralSource string `json:"referralSource,omitempty"`

	RolePreferences []string `json:"rolePreferences,omitempty"`

	StartupsAndIndustries     string `json:"startupsAndIndustries,omitempty"`
	ContributionAndExperience string `json:"contributionAndExperience,omitempty"`
	WorkMode                  string `json:"workMode,omitempty"`
	TimeCommitment            string `json:"timeCommitment,omitempty"`
	IsUSCitizen               string `json:"isUSCitizen,omitempty"`
	WorkAuthorization         string `json:"workAuthorization,omitempty"`

	AdditionalComments          string `json:"additionalComments,omitempty"`
	PreviouslyApplied           bool   `json:"previouslyApplied"`
	PreviouslyParticipated      bool   `json:"previouslyParticipated"`
	HasUpcomingInternshipOffers bool   `json:"hasUpcomingInternshipOffers"`

	Term        string                   `json:"term,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	HasResume   bool                     `json:"hasResume"`
	SubmittedAt time.Time                `json:"submittedAt"`
	ReviewedBy  string                   `json:"reviewedBy,omitempty"`
	ReviewNotes string                   `json:"reviewNotes,omitempty"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// ResumeURLResponse - временная подписанная ссылка на резюме
type ResumeURLResponse struct {
	SignedURL string `json:"signedUrl"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

func ToApplicationResponse(app *models.StudentApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:               app.ID,
		UserID:           app.UserID,
		FullName:         app.FullName,
		Pronouns:         app.Pronouns,
		GradYear:         app.GradYear,
		School:           app.School,
		Major:            app.Major,
		Email:            app.Email,
		LinkedinProfile:  app.LinkedinProfile,
		PortfolioWebsite: app.PortfolioWebsite,

		HowDidYouHear:  app.HowDidYouHear,
		ReferralSource: app.ReferralSource,

		RolePreferences: app.RolePreferences,

		StartupsAndIndustries:     app.StartupsAndIndustries,
		ContributionAndExperience: app.ContributionAndExperience,
		WorkMode:                  app.WorkMode,
		TimeCommitment:            app.TimeCommitment,
		IsUSCitizen:               app.IsUSCitizen,
		WorkAuthorization:         app.WorkAuthorization,

		AdditionalComments:          app.AdditionalComments,
		PreviouslyApplied:           app.PreviouslyApplied,
		PreviouslyParticipated:      app.PreviouslyParticipated,
		HasUpcomingInternshipOffers: app.HasUpcomingInternshipOffers,

		Term:        app.Term,
		Status:      app.Status,
		HasResume:   app.HasResume(),
		SubmittedAt: app.SubmittedAt,
		ReviewedBy:  app.ReviewedBy,
		ReviewNotes: app.ReviewNotes,
		UpdatedAt:   app.UpdatedAt,
	}
}

func ToApplicationResponses(apps []models.StudentApplication) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, ToApplicationResponse(&apps[i]))
	}
	return responses
}
