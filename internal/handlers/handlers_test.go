package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fellowship_backend/internal/config"
	"fellowship_backend/internal/email"
	"fellowship_backend/internal/handlers"
	"fellowship_backend/internal/middleware"
	"fellowship_backend/internal/models"
	"fellowship_backend/internal/routes"
	"fellowship_backend/internal/services"
	"fellowship_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAdminToken = "test-admin-registration-token"

// newTestRouter поднимает полный HTTP стек поверх in-memory SQLite
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StudentApplication{},
		&models.Startup{},
		&models.Interview{},
	))

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	sc := services.NewServiceContainer(store, &email.NoopProvider{})
	appHandlers := handlers.NewAppHandlers(sc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.DBMiddleware(db))
	routes.RegisterRoutes(router, appHandlers)

	return router
}

func sendJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

func loginAs(t *testing.T, router *gin.Engine, emailAddr, password string) string {
	t.Helper()

	rec, body := sendJSON(t, router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    emailAddr,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func registerAndLoginStudent(t *testing.T, router *gin.Engine, emailAddr string) string {
	t.Helper()

	rec, _ := sendJSON(t, router, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":    emailAddr,
		"password": "super_password123",
		"userType": "STUDENT",
		"fullName": "Test Student",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return loginAs(t, router, emailAddr, "super_password123")
}

func registerAndLoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec, _ := sendJSON(t, router, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":      "admin@test.com",
		"password":   "super_password123",
		"userType":   "ADMIN",
		"fullName":   "Test Admin",
		"adminToken": testAdminToken,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return loginAs(t, router, "admin@test.com", "super_password123")
}

func studentApplicationBody(emailAddr string) map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Test Student",
		"gradYear":        "2027",
		"school":          "NYU",
		"major":           "CS",
		"email":           emailAddr,
		"rolePreferences": []string{"Tech"},
		"workMode":        "Hybrid",
		"timeCommitment":  "10-15 hours/week",
		"isUSCitizen":     "Yes",
		"term":            "Fall 2026",
	}
}

// TestAuthMiddleware_Rejections - защищенные маршруты без токена и с мусором
func TestAuthMiddleware_Rejections(t *testing.T) {
	router := newTestRouter(t)

	// Без токена
	rec, _ := sendJSON(t, router, http.MethodGet, "/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Мусорный токен
	rec, _ = sendJSON(t, router, http.MethodGet, "/v1/auth/me", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoleEnforcement - студент не попадает в админские маршруты
func TestRoleEnforcement(t *testing.T) {
	router := newTestRouter(t)

	studentToken := registerAndLoginStudent(t, router, "model@test.com")

	rec, _ := sendJSON(t, router, http.MethodGet, "/v1/export/students.csv", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = sendJSON(t, router, http.MethodPatch, "/v1/students/applications/some-id", studentToken, map[string]string{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestValidation_BadRequest - невалидное тело дает 400 с картой ошибок
func TestValidation_BadRequest(t *testing.T) {
	router := newTestRouter(t)

	rec, body := sendJSON(t, router, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"userType": "WIZARD",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body["error"])
}

// TestAdmissionsFlow - сквозной сценарий: студент подает заявку,
// админ ревьюит и принимает решение
func TestAdmissionsFlow(t *testing.T) {
	router := newTestRouter(t)

	studentToken := registerAndLoginStudent(t, router, "model@test.com")
	adminToken := registerAndLoginAdmin(t, router)

	// Студент подает заявку
	rec, created := sendJSON(t, router, http.MethodPost, "/v1/students/applications", studentToken,
		studentApplicationBody("model@test.com"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	appID, _ := created["id"].(string)
	require.NotEmpty(t, appID)
	assert.Equal(t, "submitted", created["status"])

	// Повторная подача - 409
	rec, _ = sendJSON(t, router, http.MethodPost, "/v1/students/applications", studentToken,
		studentApplicationBody("model@test.com"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Админ видит заявку в списке по фильтру
	req := httptest.NewRequest(http.MethodGet, "/v1/students/applications?status=submitted", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, appID, list[0]["id"])

	// Админ записывает интервью
	rec, interview := sendJSON(t, router, http.MethodPost, "/v1/students/applications/"+appID+"/interview", adminToken,
		map[string]interface{}{
			"interviewerName":    "Test Admin",
			"technicalScore":     8,
			"communicationScore": 7,
			"motivationScore":    9,
			"cultureFitScore":    6,
			"recommendation":     "YES",
		})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 7.6, interview["overallScore"])

	// Решение: accepted с заметкой
	rec, updated := sendJSON(t, router, http.MethodPatch, "/v1/students/applications/"+appID, adminToken,
		map[string]string{
			"status":      "accepted",
			"reviewNotes": "Strong candidate",
		})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "accepted", updated["status"])
	assert.Equal(t, "Strong candidate", updated["reviewNotes"])

	// Студент видит новый статус
	rec, mine := sendJSON(t, router, http.MethodGet, "/v1/students/applications/"+appID, studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", mine["status"])
}

// TestResumeUploadFlow - multipart загрузка и подписанная ссылка по HTTP
func TestResumeUploadFlow(t *testing.T) {
	router := newTestRouter(t)

	studentToken := registerAndLoginStudent(t, router, "model@test.com")

	rec, created := sendJSON(t, router, http.MethodPost, "/v1/students/applications", studentToken,
		studentApplicationBody("model@test.com"))
	require.Equal(t, http.StatusCreated, rec.Code)
	appID, _ := created["id"].(string)

	// Собираем multipart тело
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/students/applications/"+appID+"/resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+studentToken)

	uploadRec := httptest.NewRecorder()
	router.ServeHTTP(uploadRec, req)
	require.Equal(t, http.StatusOK, uploadRec.Code, uploadRec.Body.String())

	var withResume map[string]interface{}
	require.NoError(t, json.Unmarshal(uploadRec.Body.Bytes(), &withResume))
	assert.Equal(t, true, withResume["hasResume"])

	// Подписанная ссылка
	rec, urlBody := sendJSON(t, router, http.MethodGet, "/v1/students/applications/"+appID+"/resume", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, urlBody["signedUrl"])
	assert.Equal(t, float64(15*60), urlBody["expiresIn"])
}

// TestExportEndpoints - экспорт отдает attachment с нужным типом
func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(t)

	adminToken := registerAndLoginAdmin(t, router)

	req := httptest.NewRequest(http.MethodGet, "/v1/export/students.csv", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "full_name")

	req = httptest.NewRequest(http.MethodGet, "/v1/export/startups.json", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

// TestStartupIntakeFlow - компания подает форму, админ одобряет
func TestStartupIntakeFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := sendJSON(t, router, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":       "founder@acme.test",
		"password":    "super_password123",
		"userType":    "STARTUP",
		"companyName": "Acme AI",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	startupToken := loginAs(t, router, "founder@acme.test", "super_password123")
	adminToken := registerAndLoginAdmin(t, router)

	intake := map[string]interface{}{
		"companyName":   "Acme AI",
		"industry":      "Developer Tools",
		"description":   "We build AI tooling for code review",
		"stage":         "Seed",
		"contactName":   "Jane Founder",
		"contactEmail":  "jane@acme.test",
		"operatingMode": "Fully Remote",

		"numberOfInternsNeeded": 2,
		"positions": []map[string]interface{}{
			{"roleType": "Technical", "description": "Backend intern"},
		},
		"commitmentAcknowledged": true,
		"term":                   "Fall 2026",
	}

	rec, created := sendJSON(t, router, http.MethodPost, "/v1/startups/intake", startupToken, intake)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	startupID, _ := created["id"].(string)
	require.NotEmpty(t, startupID)

	// Студент не может подать интейк-форму
	studentToken := registerAndLoginStudent(t, router, "model@test.com")
	rec, _ = sendJSON(t, router, http.MethodPost, "/v1/startups/intake", studentToken, intake)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Админ одобряет
	rec, updated := sendJSON(t, router, http.MethodPatch, fmt.Sprintf("/v1/startups/%s", startupID), adminToken,
		map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "approved", updated["status"])
}
