package services

import (
	"fellowship_backend/internal/email"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/storage"
)

// ServiceContainer - контейнер всех сервисов приложения.
// Собирается один раз при старте и передается в хендлеры.
type ServiceContainer struct {
	Auth        *AuthService
	Application *ApplicationService
	Startup     *StartupService
	Interview   *InterviewService
	Export      *ExportService
}

// NewServiceContainer связывает репозитории, хранилище и почту в сервисы
func NewServiceContainer(store storage.Storage, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	appRepo := repositories.NewApplicationRepository()
	startupRepo := repositories.NewStartupRepository()
	interviewRepo := repositories.NewInterviewRepository()

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		Application: NewApplicationService(appRepo, store, mailer),
		Startup:     NewStartupService(startupRepo),
		Interview:   NewInterviewService(interviewRepo, appRepo),
		Export:      NewExportService(appRepo, startupRepo),
	}
}
