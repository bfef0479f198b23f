package services

import (
	"context"
	"testing"

	"fellowship_backend/internal/models"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_DuplicateEmail - повторная регистрация на тот же email дает 409
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	registerStudent(t, env, "model@test.com")

	_, err := env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:    "model@test.com",
		Password: "another_password",
		UserType: models.UserTypeStudent,
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

// TestRegister_EmailNormalized - email приводится к нижнему регистру
func TestRegister_EmailNormalized(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:    "  Student@Test.COM ",
		Password: "super_password123",
		UserType: models.UserTypeStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "student@test.com", resp.Email)

	// Дубликат с другим регистром тоже отклоняется
	_, err = env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:    "STUDENT@test.com",
		Password: "super_password123",
		UserType: models.UserTypeStudent,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

// TestRegister_AdminToken - регистрация админа требует правильный токен
func TestRegister_AdminToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	// Неверный токен
	_, err := env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:      "admin@test.com",
		Password:   "super_password123",
		UserType:   models.UserTypeAdmin,
		FullName:   "Wannabe Admin",
		AdminToken: "wrong-token",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAdminToken)

	// Верный токен, но пустое имя - тоже 403
	_, err = env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:      "admin@test.com",
		Password:   "super_password123",
		UserType:   models.UserTypeAdmin,
		AdminToken: testAdminToken,
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	// Все условия соблюдены
	resp, err := env.sc.Auth.Register(ctx, env.db, &dto.RegisterRequest{
		Email:      "admin@test.com",
		Password:   "super_password123",
		UserType:   models.UserTypeAdmin,
		FullName:   "Real Admin",
		AdminToken: testAdminToken,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, resp.UserType)

	// Роль выведена из типа
	profile, err := env.sc.Auth.GetProfile(env.db, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, profile.Role)
}

// TestLogin_Success - успешный логин выдает bearer-токен
func TestLogin_Success(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStudent(t, env, "model@test.com")

	resp, err := env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "model@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(24*3600), resp.ExpiresIn)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, models.UserTypeStudent, resp.UserType)
}

// TestLogin_NoDetailLeak - неизвестный email и неверный пароль дают
// один и тот же ответ
func TestLogin_NoDetailLeak(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	registerStudent(t, env, "model@test.com")

	_, errUnknown := env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "super_password123",
	})
	_, errWrongPass := env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "model@test.com",
		Password: "wrong_password",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	// Сообщения идентичны - форма ответа не различается
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

// TestLogin_DisabledAndLocked - выключенный или заблокированный аккаунт
// не логинится даже с верным паролем
func TestLogin_DisabledAndLocked(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStudent(t, env, "model@test.com")

	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", userID).
		Update("account_enabled", false).Error)

	_, err := env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "model@test.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)

	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"account_enabled": true, "account_locked": true}).Error)

	_, err = env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "model@test.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
}

// TestLogin_UpdatesLastLogin - успешный логин записывает метку входа
func TestLogin_UpdatesLastLogin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStudent(t, env, "model@test.com")

	var before models.User
	require.NoError(t, env.db.First(&before, "id = ?", userID).Error)
	assert.Nil(t, before.LastLoginAt)

	_, err := env.sc.Auth.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "model@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	var after models.User
	require.NoError(t, env.db.First(&after, "id = ?", userID).Error)
	assert.NotNil(t, after.LastLoginAt)
}
