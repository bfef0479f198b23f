package dto

import (
	"time"

	"fellowship_backend/internal/models"
)

// PositionRequest - одна открытая позиция в интейк-форме
type PositionRequest struct {
	RoleType       string   `json:"roleType" validate:"required,max=100"`
	Description    string   `json:"description" validate:"required,max=2000"`
	RequiredSkills []string `json:"requiredSkills" validate:"omitempty,dive,max=100"`
	TimeCommitment string   `json:"timeCommitment" validate:"omitempty,max=100"`
}

// CreateStartupRequest - интейк-форма компании
type CreateStartupRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=255"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=4000"`
	Stage       string `json:"stage" validate:"required,max=100"`
	TeamSize    string `json:"teamSize" validate:"omitempty,max=50"`
	FoundedYear string `json:"foundedYear" validate:"omitempty,max=10"`

	ContactName  string `json:"contactName" validate:"required,max=255"`
	ContactTitle string `json:"contactTitle" validate:"omitempty,max=255"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"omitempty,max=50"`

	OperatingMode string `json:"operatingMode" validate:"required,max=50"`
	TimeZone      string `json:"timeZone" validate:"omitempty,max=100"`

	InternsSupervisor         string            `json:"internsSupervisor" validate:"omitempty,max=255"`
	HasHiredInternsPreviously bool              `json:"hasHiredInternsPreviously"`
	NumberOfInternsNeeded     int               `json:"numberOfInternsNeeded" validate:"required,min=1"`
	Positions                 []PositionRequest `json:"positions" validate:"required,min=1,dive"`
	WillPayInterns            string            `json:"willPayInterns" validate:"omitempty,max=50"`
	PayAmount                 string            `json:"payAmount" validate:"omitempty,max=100"`
	LookingForPermanentIntern string            `json:"lookingForPermanentIntern" validate:"omitempty,max=50"`
	ProjectDescriptionURL     string            `json:"projectDescriptionUrl" validate:"omitempty,url"`

	ReferralSource string `json:"referralSource" validate:"omitempty,max=255"`

	// Форма не принимается без подтвержденного обязательства
	CommitmentAcknowledged bool `json:"commitmentAcknowledged" validate:"required"`

	Term string `json:"term" validate:"required,max=50"`
}

// UpdateStartupStatusRequest - админское решение по интейку
type UpdateStartupStatusRequest struct {
	Status      models.StartupStatus `json:"status" validate:"required,oneof=submitted approved active inactive"`
	ReviewNotes string               `json:"reviewNotes" validate:"omitempty,max=2000"`
}

type StartupResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Stage       string `json:"stage,omitempty"`
	TeamSize    string `json:"teamSize,omitempty"`
	FoundedYear string `json:"foundedYear,omitempty"`

	ContactName  string `json:"contactName,omitempty"`
	ContactTitle string `json:"contactTitle,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`

	OperatingMode string `json:"operatingMode,omitempty"`
	TimeZone      string `json:"timeZone,omitempty"`

	InternsSupervisor         string            `json:"internsSupervisor,omitempty"`
	HasHiredInternsPreviously bool              `json:"hasHiredInternsPreviously"`
	NumberOfInternsNeeded     int               `json:"numberOfInternsNeeded,omitempty"`
	Positions                 []models.Position `json:"positions,omitempty"`
	WillPayInterns            string            `json:"willPayInterns,omitempty"`
	PayAmount                 string            `json:"payAmount,omitempty"`
	LookingForPermanentIntern string            `json:"lookingForPermanentIntern,omitempty"`
	ProjectDescriptionURL     string            `json:"projectDescriptionUrl,omitempty"`

	ReferralSource string `json:"referralSource,omitempty"`

	CommitmentAcknowledged bool `json:"commitmentAcknowledged"`

	Term        string               `json:"term,omitempty"`
	Status      models.StartupStatus `json:"status"`
	SubmittedAt time.Time            `json:"submittedAt"`
	ReviewedBy  string               `json:"reviewedBy,omitempty"`
	ReviewNotes string               `json:"reviewNotes,omitempty"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func ToStartupResponse(startup *models.Startup) StartupResponse {
	return StartupResponse{
		ID:          startup.ID,
		UserID:      startup.UserID,
		CompanyName: startup.CompanyName,
		Website:     startup.Website,
		Industry:    startup.Industry,
		Description: startup.Description,
		Stage:       startup.Stage,
		TeamSize:    startup.TeamSize,
		FoundedYear: startup.FoundedYear,

		ContactName:  startup.ContactName,
		ContactTitle: startup.ContactTitle,
		ContactEmail: startup.ContactEmail,
		ContactPhone: startup.ContactPhone,

		OperatingMode: startup.OperatingMode,
		TimeZone:      startup.TimeZone,

		InternsSupervisor:         startup.InternsSupervisor,
		HasHiredInternsPreviously: startup.HasHiredInternsPreviously,
		NumberOfInternsNeeded:     startup.NumberOfInternsNeeded,
		Positions:                 startup.Positions,
		WillPayInterns:            startup.WillPayInterns,
		PayAmount:                 startup.PayAmount,
		LookingForPermanentIntern: startup.LookingForPermanentIntern,
		ProjectDescriptionURL:     startup.ProjectDescriptionURL,

		ReferralSource: startup.ReferralSource,

		CommitmentAcknowledged: startup.CommitmentAcknowledged,

		Term:        startup.Term,
		Status:      startup.Status,
		SubmittedAt: startup.SubmittedAt,
		ReviewedBy:  startup.ReviewedBy,
		ReviewNotes: startup.ReviewNotes,
		UpdatedAt:   startup.UpdatedAt,
	}
}

func ToStartupResponses(startups []models.Startup) []StartupResponse {
	responses := make([]StartupResponse, 0, len(startups))
	for i := range startups {
		responses = append(responses, ToStartupResponse(&startups[i]))
	}
	return responses
}
