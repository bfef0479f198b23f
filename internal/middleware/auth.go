package middleware

import (
	"strings"

	"fellowship_backend/internal/auth"
	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
	"fellowship_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Ключи в gin.Context, под которыми лежат данные из токена
const (
	ContextUserIDKey   = "userID"
	ContextEmailKey    = "email"
	ContextUserTypeKey = "userType"
	ContextRoleKey     = "role"
)

// AuthMiddleware - middleware проверки JWT.
// Отсутствующий, битый и истекший токен дают одинаковый 401,
// чтобы клиент в любом из этих случаев чистил локальное состояние.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			if err == auth.ErrTokenExpired {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set(ContextUserIDKey, claims.UserID())
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextUserTypeKey, claims.UserType)
		c.Set(ContextRoleKey, claims.Role)

		// user_id попадает во все логи этого запроса
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - middleware ограничения по ролям
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := getRole(c)
		if !ok || !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserTypes - middleware ограничения по типу пользователя.
// Админ проходит всегда.
func RequireUserTypes(types ...models.UserType) gin.HandlerFunc {
	typeSet := make(map[models.UserType]bool)
	for _, t := range types {
		typeSet[t] = true
	}

	return func(c *gin.Context) {
		if role, ok := getRole(c); ok && role == models.UserRoleAdmin {
			c.Next()
			return
		}

		userTypeVal, exists := c.Get(ContextUserTypeKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no user type"))
			c.Abort()
			return
		}

		userType, ok := userTypeVal.(models.UserType)
		if !ok || !typeSet[userType] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: wrong account type"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware - сокращение для админских групп роутов
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

func getRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}

	role, ok := roleVal.(models.UserRole)
	if !ok {
		// Попытка преобразовать из string, если роль сохранена как строка
		roleStr, isString := roleVal.(string)
		if !isString {
			return "", false
		}
		role = models.UserRole(roleStr)
	}
	return role, true
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetIdentity собирает identity запроса из контекста.
// false, если запрос не прошел AuthMiddleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	id := Identity{UserID: GetUserID(c)}
	if id.UserID == "" {
		return Identity{}, false
	}

	if v, ok := c.Get(ContextEmailKey); ok {
		id.Email, _ = v.(string)
	}
	if v, ok := c.Get(ContextUserTypeKey); ok {
		id.UserType, _ = v.(models.UserType)
	}
	if role, ok := getRole(c); ok {
		id.Role = role
	}
	return id, true
}

// Identity - аутентифицированный субъект запроса
type Identity struct {
	UserID   string
	Email    string
	UserType models.UserType
	Role     models.UserRole
}

// IsAdmin проверяет админскую роль
func (i Identity) IsAdmin() bool {
	return i.Role == models.UserRoleAdmin
}
