package models

import (
	"time"

	"gorm.io/datatypes"
)

// Position - описание одной позиции внутри интейк-формы стартапа.
// Хранится как элемент JSON-массива, порядок сохраняется.
type Position struct {
	RoleType       string   `json:"roleType"` // Technical, Business, Creative
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	TimeCommitment string   `json:"timeCommitment,omitempty"` // "10-15 hours/week"
}

// Startup - интейк-форма стартапа. Одна форма на пользователя (1:1)
type Startup struct {
	BaseModel
	UserID string `gorm:"not null;uniqueIndex" json:"userId"`

	// Company Info
	CompanyName string `gorm:"not null" json:"companyName"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Stage       string `json:"stage,omitempty"` // Stage of funding
	TeamSize    string `json:"teamSize,omitempty"`
	FoundedYear string `json:"foundedYear,omitempty"`

	// Contact Info
	ContactName  string `json:"contactName,omitempty"`
	ContactTitle string `json:"contactTitle,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`

	// Operating Details
	OperatingMode string `json:"operatingMode,omitempty"` // Hybrid, Fully Remote, Fully In Person
	TimeZone      string `json:"timeZone,omitempty"`

	// Internship Details
	InternsSupervisor         string                        `json:"internsSupervisor,omitempty"`
	HasHiredInternsPreviously bool                          `json:"hasHiredInternsPreviously"`
	NumberOfInternsNeeded     int                           `json:"numberOfInternsNeeded,omitempty"`
	Positions                 datatypes.JSONSlice[Position] `json:"positions,omitempty"`
	WillPayInterns            string                        `json:"willPayInterns,omitempty"` // Yes, No, Other
	PayAmount                 string                        `json:"payAmount,omitempty"`
	LookingForPermanentIntern string                        `json:"lookingForPermanentIntern,omitempty"`
	ProjectDescriptionURL     string                        `json:"projectDescriptionUrl,omitempty"`

	// Discovery
	ReferralSource string `json:"referralSource,omitempty"`

	// Commitment: обязательство принять хотя бы одного fellow
	CommitmentAcknowledged bool `json:"commitmentAcknowledged"`

	// Administrative Fields (заполняются только админом)
	Term        string        `gorm:"index" json:"term,omitempty"`
	Status      StartupStatus `gorm:"type:varchar(20);not null;default:'submitted';index" json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
	ReviewedBy  string        `json:"reviewedBy,omitempty"`
	ReviewNotes string        `json:"reviewNotes,omitempty"`
}
