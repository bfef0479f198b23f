package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для доменных ошибок портала (auth, application, startup, interview, export).
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrDatabase - фабрика для неожиданных ошибок БД (500)
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}

// ErrExternalService - фабрика для ошибок внешних систем: object storage, SMTP (502)
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// =========================================================================
// Auth / Identity
// =========================================================================

// ErrEmailAlreadyRegistered - повторная регистрация на тот же email (409)
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials - единый ответ для "нет такого пользователя"
// и "неверный пароль". Форма ответа не должна различаться (не раскрываем детали).
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidAdminToken - неверный out-of-band токен админ-регистрации (403)
var ErrInvalidAdminToken = New(
	CodeForbidden,
	"auth",
	"Invalid admin registration token",
	http.StatusForbidden,
)

// ErrAccountDisabled - аккаунт выключен администратором (403)
var ErrAccountDisabled = New(
	CodeForbidden,
	"auth",
	"Account is disabled",
	http.StatusForbidden,
)

// ErrAccountLocked - аккаунт заблокирован (403)
var ErrAccountLocked = New(
	CodeForbidden,
	"auth",
	"Account is locked",
	http.StatusForbidden,
)

// ErrTokenExpired - срок жизни токена истек (401)
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен отсутствует, не парсится или подпись неверна (401)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие (403)
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// =========================================================================
// Applications
// =========================================================================

// ErrApplicationNotFound - заявка не найдена (404)
func ErrApplicationNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "application", "Application not found", http.StatusNotFound)
}

// ErrApplicationExists - у пользователя уже есть заявка (409)
var ErrApplicationExists = New(
	CodeConflict,
	"application",
	"You have already submitted an application",
	http.StatusConflict,
)

// ErrNotApplicationOwner - доступ к чужой заявке (403)
var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"You can only access your own application",
	http.StatusForbidden,
)

// ErrResumeNotUploaded - подписанный URL запрошен до загрузки резюме (404)
var ErrResumeNotUploaded = New(
	CodeNotFound,
	"application",
	"No resume uploaded for this application",
	http.StatusNotFound,
)

// =========================================================================
// Startups
// =========================================================================

// ErrStartupNotFound - интейк-форма не найдена (404)
func ErrStartupNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "startup", "Startup not found", http.StatusNotFound)
}

// ErrStartupExists - компания уже подала интейк-форму (409)
var ErrStartupExists = New(
	CodeConflict,
	"startup",
	"You have already submitted an intake form",
	http.StatusConflict,
)

// ErrNotStartupOwner - доступ к чужой интейк-форме (403)
var ErrNotStartupOwner = New(
	CodeForbidden,
	"startup",
	"You can only access your own intake form",
	http.StatusForbidden,
)

// =========================================================================
// Interviews
// =========================================================================

// ErrInterviewNotFound - интервью не найдено (404)
func ErrInterviewNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "interview", "No interview found for this application", http.StatusNotFound)
}

// ErrInterviewExists - инвариант "не больше одного интервью на заявку" (409)
var ErrInterviewExists = New(
	CodeConflict,
	"interview",
	"Interview already exists for this application. Use PATCH to update.",
	http.StatusConflict,
)
