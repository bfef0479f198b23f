package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fellowship_backend/internal/auth"
	"fellowship_backend/internal/config"
	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register создает аккаунт. Токен не выдается, клиент логинится отдельно.
// Регистрация админа требует out-of-band токен из конфигурации.
func (s *AuthService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if req.UserType == models.UserTypeAdmin {
		cfg := config.GetConfig()
		if cfg.Admin.RegistrationToken == "" || req.AdminToken != cfg.Admin.RegistrationToken {
			return nil, apperrors.ErrInvalidAdminToken
		}
		if strings.TrimSpace(req.FullName) == "" {
			return nil, apperrors.NewForbiddenError("Full name is required for admin accounts")
		}
	}

	exists, err := s.userRepo.ExistsByEmail(db, email)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "auth")
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRoleUser
	if req.UserType == models.UserTypeAdmin {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   hash,
		UserType:       req.UserType,
		Role:           role,
		FullName:       strings.TrimSpace(req.FullName),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		AccountEnabled: true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "user_type", string(user.UserType))

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Message:  "Registration successful",
	}, nil
}

// Login проверяет учетные данные. Неизвестный email и неверный пароль
// дают один и тот же ответ.
func (s *AuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.AccountEnabled {
		return nil, apperrors.ErrAccountDisabled
	}
	if user.AccountLocked {
		return nil, apperrors.ErrAccountLocked
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(db, user); err != nil {
		// Метка последнего входа не критична для выдачи токена
		logger.CtxWarn(ctx, "failed to record last login", "user_id", user.ID, "error", err.Error())
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	cfg := config.GetConfig()
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(cfg.JWT.ExpirationHours) * 3600,
		UserID:      user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
		Role:        user.Role,
	}, nil
}

// GetProfile возвращает профиль текущего пользователя
func (s *AuthService) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
