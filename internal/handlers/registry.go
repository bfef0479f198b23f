package handlers

import (
	"fellowship_backend/internal/services"
	"fellowship_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ApplicationHandler *ApplicationHandler
	StartupHandler     *StartupHandler
	ExportHandler      *ExportHandler
}

// NewAppHandlers собирает хэндлеры поверх сервисного контейнера
func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.Auth),
		ApplicationHandler: NewApplicationHandler(base, sc.Application, sc.Interview),
		StartupHandler:     NewStartupHandler(base, sc.Startup),
		ExportHandler:      NewExportHandler(base, sc.Export),
	}
}
