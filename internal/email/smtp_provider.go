package email

import (
	"fmt"

	"fellowship_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPConfig - настройки SMTP провайдера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendDecision отправляет письмо о решении по заявке.
// Вызывается best-effort: ошибка отправки не должна блокировать запись статуса.
func (p *SMTPProvider) SendDecision(to, fullName string, status models.ApplicationStatus) error {
	if err := p.Validate(); err != nil {
		return err
	}

	subject, body := decisionMessage(fullName, status)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return p.dialer.DialAndSend(m)
}

// Validate проверяет конфигурацию провайдера
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is not configured")
	}
	return nil
}

func decisionMessage(fullName string, status models.ApplicationStatus) (subject, body string) {
	name := fullName
	if name == "" {
		name = "applicant"
	}

	switch status {
	case models.ApplicationStatusAccepted:
		subject = "Your fellowship application decision"
		body = fmt.Sprintf(
			"Dear %s,\n\nCongratulations! Your application to the fellowship program has been accepted.\nWe will reach out shortly with next steps.\n\nThe Fellowship Team",
			name,
		)
	case models.ApplicationStatusRejected:
		subject = "Your fellowship application decision"
		body = fmt.Sprintf(
			"Dear %s,\n\nThank you for applying to the fellowship program. After careful review we are unable to offer you a place this term.\nWe encourage you to apply again next cycle.\n\nThe Fellowship Team",
			name,
		)
	default:
		subject = "Your fellowship application status"
		body = fmt.Sprintf(
			"Dear %s,\n\nThe status of your fellowship application has been updated to: %s.\n\nThe Fellowship Team",
			name, status,
		)
	}
	return subject, body
}
