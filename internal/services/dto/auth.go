package dto

import (
	"time"

	"fellowship_backend/internal/models"
)

// RegisterRequest - запрос регистрации студента, стартапа или админа
type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	UserType    models.UserType `json:"userType" validate:"required,oneof=STUDENT STARTUP ADMIN"`
	FullName    string          `json:"fullName" validate:"omitempty,max=255"`
	CompanyName string          `json:"companyName" validate:"omitempty,max=255"`

	// AdminToken обязателен только при userType=ADMIN
	AdminToken string `json:"adminToken" validate:"omitempty"`
}

// RegisterResponse - токен при регистрации не выдается,
// клиент делает login отдельным запросом
type RegisterResponse struct {
	UserID   string          `json:"userId"`
	Email    string          `json:"email"`
	UserType models.UserType `json:"userType"`
	Message  string          `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - bearer-токен и краткий профиль
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresIn   int64           `json:"expiresIn"` // seconds
	UserID      string          `json:"userId"`
	Email       string          `json:"email"`
	UserType    models.UserType `json:"userType"`
	Role        models.UserRole `json:"role"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	UserType    models.UserType `json:"userType"`
	Role        models.UserRole `json:"role"`
	FullName    string          `json:"fullName,omitempty"`
	CompanyName string          `json:"companyName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
		Role:        user.Role,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
		CreatedAt:   user.CreatedAt,
	}
}
