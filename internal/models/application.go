package models

import (
	"time"

	"gorm.io/datatypes"
)

// StudentApplication - анкета студента. Одна заявка на пользователя (1:1)
type StudentApplication struct {
	BaseModel
	UserID string `gorm:"not null;uniqueIndex" json:"userId"`

	// Personal Information
	FullName         string `gorm:"not null" json:"fullName"`
	Pronouns         string `json:"pronouns,omitempty"`
	GradYear         string `json:"gradYear,omitempty"` // 2026, 2027, 2028, 2029
	School           string `json:"school,omitempty"`
	Major            string `json:"major,omitempty"`
	Email            string `gorm:"not null;index" json:"email"`
	LinkedinProfile  string `json:"linkedinProfile,omitempty"`
	PortfolioWebsite string `json:"portfolioWebsite,omitempty"`

	// Ключ объекта в хранилище, не URL. Подписанный URL выдается отдельно
	ResumeKey string `json:"-"`

	// Discovery
	HowDidYouHear  string `json:"howDidYouHear,omitempty"`
	ReferralSource string `json:"referralSource,omitempty"`

	// Role Preferences: Creative, Business, Tech
	RolePreferences datatypes.JSONSlice[string] `json:"rolePreferences,omitempty"`

	// Short Answer Questions
	StartupsAndIndustries     string `json:"startupsAndIndustries,omitempty"`
	ContributionAndExperience string `json:"contributionAndExperience,omitempty"`
	WorkMode                  string `json:"workMode,omitempty"` // Hybrid, Remote, In person (NYC), Anything
	TimeCommitment            string `json:"timeCommitment,omitempty"`
	IsUSCitizen               string `json:"isUSCitizen,omitempty"`
	WorkAuthorization         string `json:"workAuthorization,omitempty"`

	// Miscellaneous
	AdditionalComments          string `json:"additionalComments,omitempty"`
	PreviouslyApplied           bool   `json:"previouslyApplied"`
	PreviouslyParticipated      bool   `json:"previouslyParticipated"`
	HasUpcomingInternshipOffers bool   `json:"hasUpcomingInternshipOffers"`

	// Administrative Fields (заполняются только админом)
	Term        string            `gorm:"index" json:"term,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted';index" json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	ReviewedBy  string            `json:"reviewedBy,omitempty"`
	ReviewNotes string            `json:"reviewNotes,omitempty"`
}

// HasResume сообщает, прикреплено ли резюме к заявке
func (a *StudentApplication) HasResume() bool {
	return a.ResumeKey != ""
}
