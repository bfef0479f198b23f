package email

import (
	"fellowship_backend/internal/logger"
	"fellowship_backend/internal/models"
)

// Provider определяет интерфейс для отправки уведомлений
type Provider interface {
	// SendDecision отправляет студенту письмо о решении по заявке
	SendDecision(to, fullName string, status models.ApplicationStatus) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// NoopProvider используется, когда SMTP не сконфигурирован.
// Письма не уходят, факт отправки только логируется.
type NoopProvider struct{}

func (p *NoopProvider) SendDecision(to, fullName string, status models.ApplicationStatus) error {
	logger.Info("email disabled, decision notification skipped",
		"to", to,
		"status", string(status),
	)
	return nil
}

func (p *NoopProvider) Validate() error {
	return nil
}
