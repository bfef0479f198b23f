package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"userType"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'ROLE_USER'" json:"role"`
	FullName     string   `json:"fullName,omitempty"`
	CompanyName  string   `json:"companyName,omitempty"`

	AccountEnabled bool       `gorm:"default:true" json:"accountEnabled"`
	AccountLocked  bool       `gorm:"default:false" json:"accountLocked"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`

	// Relations
	Application *StudentApplication `gorm:"foreignKey:UserID" json:"-"`
	Startup     *Startup            `gorm:"foreignKey:UserID" json:"-"`
}
