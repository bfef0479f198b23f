package auth

import (
	"errors"
	"time"

	"fellowship_backend/internal/config"
	"fellowship_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims - набор утверждений в JWT. Subject = userId.
type Claims struct {
	Email       string          `json:"email"`
	UserType    models.UserType `json:"userType"`
	Role        models.UserRole `json:"role"`
	FullName    string          `json:"fullName,omitempty"`
	CompanyName string          `json:"companyName,omitempty"`
	jwt.RegisteredClaims
}

// UserID возвращает subject токена
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken выпускает подписанный токен для пользователя.
// Время жизни берется из конфигурации (в часах).
func GenerateToken(user *models.User) (string, error) {
	cfg := config.GetConfig()
	now := time.Now()
	expiration := now.Add(time.Duration(cfg.JWT.ExpirationHours) * time.Hour)

	claims := &Claims{
		Email:       user.Email,
		UserType:    user.UserType,
		Role:        user.Role,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    cfg.JWT.Issuer,
			Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken валидирует токен относительно текущего времени
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()
	return ValidateToken(cfg.JWT.Secret, tokenStr, time.Now())
}

// ValidateToken - чистая функция от (секрет, токен, момент времени).
// Только проверка подписи и claims, никакого I/O.
func ValidateToken(secret, tokenStr string, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenInvalid
			}
			return []byte(secret), nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		// Истекший токен клиент должен трактовать так же, как отсутствующий,
		// но различаем коды для логов
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
