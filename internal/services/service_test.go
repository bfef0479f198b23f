package services

import (
	"context"
	"testing"

	"fellowship_backend/internal/config"
	"fellowship_backend/internal/email"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAdminToken = "test-admin-registration-token"

// setupTestConfig подменяет глобальную конфигурацию на тестовую
func setupTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "fellowship-portal"
	cfg.JWT.Audience = "fellowship-portal-api"
	cfg.Admin.RegistrationToken = testAdminToken
	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024
	cfg.Upload.SignedURLMinutes = 15
	config.AppConfig = cfg
}

// newTestDB поднимает изолированную in-memory SQLite с полной схемой
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	err = db.AutoMigrate(
		&models.User{},
		&models.StudentApplication{},
		&models.Startup{},
		&models.Interview{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// recordingMailer фиксирует отправленные письма вместо реальной отправки
type recordingMailer struct {
	sent []sentDecision
}

type sentDecision struct {
	To       string
	FullName string
	Status   models.ApplicationStatus
}

func (m *recordingMailer) SendDecision(to, fullName string, status models.ApplicationStatus) error {
	m.sent = append(m.sent, sentDecision{To: to, FullName: fullName, Status: status})
	return nil
}

func (m *recordingMailer) Validate() error { return nil }

var _ email.Provider = (*recordingMailer)(nil)

type testEnv struct {
	db      *gorm.DB
	sc      *ServiceContainer
	mailer  *recordingMailer
	storage storage.Storage
}

// newTestEnv собирает контейнер сервисов поверх временного локального хранилища
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	setupTestConfig(t)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	mailer := &recordingMailer{}

	return &testEnv{
		db:      newTestDB(t),
		sc:      NewServiceContainer(store, mailer),
		mailer:  mailer,
		storage: store,
	}
}

// registerStudent создает студента и возвращает его userID
func registerStudent(t *testing.T, env *testEnv, emailAddr string) string {
	t.Helper()

	resp, err := env.sc.Auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Email:    emailAddr,
		Password: "super_password123",
		UserType: models.UserTypeStudent,
		FullName: "Test Student",
	})
	require.NoError(t, err)
	return resp.UserID
}

// registerAdmin создает админа через out-of-band токен
func registerAdmin(t *testing.T, env *testEnv, emailAddr string) string {
	t.Helper()

	resp, err := env.sc.Auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Email:      emailAddr,
		Password:   "super_password123",
		UserType:   models.UserTypeAdmin,
		FullName:   "Test Admin",
		AdminToken: testAdminToken,
	})
	require.NoError(t, err)
	return resp.UserID
}

// sampleApplicationRequest - валидная анкета студента
func sampleApplicationRequest(emailAddr string) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		FullName:        "Test Student",
		GradYear:        "2027",
		School:          "NYU",
		Major:           "CS",
		Email:           emailAddr,
		RolePreferences: []string{"Tech", "Business"},
		WorkMode:        "Hybrid",
		TimeCommitment:  "10-15 hours/week",
		IsUSCitizen:     "Yes",
		Term:            "Fall 2026",
	}
}

// sampleStartupRequest - валидная интейк-форма компании
func sampleStartupRequest() *dto.CreateStartupRequest {
	return &dto.CreateStartupRequest{
		CompanyName:  "Acme AI",
		Industry:     "Developer Tools",
		Description:  "We build AI tooling for code review",
		Stage:        "Seed",
		ContactName:  "Jane Founder",
		ContactEmail: "jane@acme.test",

		OperatingMode:         "Fully Remote",
		NumberOfInternsNeeded: 2,
		Positions: []dto.PositionRequest{
			{RoleType: "Technical", Description: "Backend intern", RequiredSkills: []string{"Go", "Postgres"}},
			{RoleType: "Business", Description: "Growth intern"},
		},
		WillPayInterns:         "Yes",
		PayAmount:              "$25/hr",
		CommitmentAcknowledged: true,
		Term:                   "Fall 2026",
	}
}
