package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStudentsCSV - заголовок, строки и экранирование запятых/кавычек
func TestStudentsCSV(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStudent(t, env, "model@test.com")

	req := sampleApplicationRequest("model@test.com")
	// Значения, требующие экранирования по RFC 4180
	req.School = `NYU, Tandon "School" of Engineering`
	req.AdditionalComments = "line one\nline two"
	_, err := env.sc.Application.Create(ctx, env.db, userID, "model@test.com", req)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.sc.Export.StudentsCSV(env.db, repositories.ListFilter{}, &buf))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // заголовок + одна строка

	header := records[0]
	row := records[1]
	require.Equal(t, len(header), len(row))

	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}

	assert.Equal(t, "Test Student", byName["full_name"])
	assert.Equal(t, `NYU, Tandon "School" of Engineering`, byName["school"])
	assert.Equal(t, "line one\nline two", byName["additional_comments"])
	assert.Equal(t, "Tech; Business", byName["role_preferences"])
	assert.Equal(t, "submitted", byName["status"])
	assert.Equal(t, "false", byName["has_resume"])
	assert.NotEmpty(t, byName["submitted_at"])
}

// TestStudentsCSV_Empty - пустая коллекция дает только заголовок
func TestStudentsCSV_Empty(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	var buf bytes.Buffer
	require.NoError(t, env.sc.Export.StudentsCSV(env.db, repositories.ListFilter{}, &buf))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id", records[0][0])
}

// TestStudentsJSON - выгрузка совпадает с API-представлением
func TestStudentsJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStudent(t, env, "model@test.com")
	created, err := env.sc.Application.Create(ctx, env.db, userID, "model@test.com", sampleApplicationRequest("model@test.com"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.sc.Export.StudentsJSON(env.db, repositories.ListFilter{}, &buf))

	var exported []dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, created.ID, exported[0].ID)
	assert.Equal(t, created.RolePreferences, exported[0].RolePreferences)
}

// TestStartupsCSV - позиции сворачиваются в одну ячейку
func TestStartupsCSV(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStartup(t, env, "founder@acme.test")
	_, err := env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.sc.Export.StartupsCSV(env.db, repositories.ListFilter{}, &buf))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	byName := make(map[string]string, len(records[0]))
	for i, name := range records[0] {
		byName[name] = records[1][i]
	}

	assert.Equal(t, "Acme AI", byName["company_name"])
	assert.Equal(t, "Technical: Backend intern | Business: Growth intern", byName["positions"])
	assert.Equal(t, "2", byName["number_of_interns_needed"])
	assert.Equal(t, "true", byName["commitment_acknowledged"])
}

// TestStartupsJSON_Filtered - фильтр по статусу действует и на экспорт
func TestStartupsJSON_Filtered(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStartup(t, env, "founder@acme.test")
	_, err := env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.sc.Export.StartupsJSON(env.db, repositories.ListFilter{Status: "approved"}, &buf))

	var exported []dto.StartupResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	assert.Empty(t, exported)
}
