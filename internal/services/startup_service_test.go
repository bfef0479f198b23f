package services

import (
	"context"
	"testing"

	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerStartup(t *testing.T, env *testEnv, emailAddr string) string {
	t.Helper()

	resp, err := env.sc.Auth.Register(context.Background(), env.db, &dto.RegisterRequest{
		Email:       emailAddr,
		Password:    "super_password123",
		UserType:    models.UserTypeStartup,
		CompanyName: "Acme AI",
	})
	require.NoError(t, err)
	return resp.UserID
}

// TestStartupCreate_RoundTrip - интейк-форма с позициями читается обратно
func TestStartupCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStartup(t, env, "founder@acme.test")

	created, err := env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StartupStatusSubmitted, created.Status)

	got, err := env.sc.Startup.GetMine(env.db, userID)
	require.NoError(t, err)

	assert.Equal(t, "Acme AI", got.CompanyName)
	require.Len(t, got.Positions, 2)
	assert.Equal(t, "Technical", got.Positions[0].RoleType)
	assert.Equal(t, []string{"Go", "Postgres"}, got.Positions[0].RequiredSkills)
	assert.Equal(t, "Growth intern", got.Positions[1].Description)
	assert.True(t, got.CommitmentAcknowledged)
}

// TestStartupCreate_Guards - 409 на дубликат, 400 без подтверждения
func TestStartupCreate_Guards(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStartup(t, env, "founder@acme.test")

	noCommit := sampleStartupRequest()
	noCommit.CommitmentAcknowledged = false
	_, err := env.sc.Startup.Create(ctx, env.db, userID, noCommit)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	_, err = env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	require.NoError(t, err)

	_, err = env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	assert.ErrorIs(t, err, apperrors.ErrStartupExists)
}

// TestStartupOwnership - компания видит только свою форму
func TestStartupOwnership(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	aliceID := registerStartup(t, env, "alice@acme.test")
	bobID := registerStartup(t, env, "bob@other.test")

	created, err := env.sc.Startup.Create(ctx, env.db, aliceID, sampleStartupRequest())
	require.NoError(t, err)

	_, err = env.sc.Startup.GetByID(env.db, aliceID, false, created.ID)
	assert.NoError(t, err)

	_, err = env.sc.Startup.GetByID(env.db, bobID, false, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotStartupOwner)

	_, err = env.sc.Startup.GetByID(env.db, "admin", true, created.ID)
	assert.NoError(t, err)
}

// TestStartupUpdateStatusAndDelete - решение админа и удаление
func TestStartupUpdateStatusAndDelete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerStartup(t, env, "founder@acme.test")
	adminID := registerAdmin(t, env, "admin@test.com")

	created, err := env.sc.Startup.Create(ctx, env.db, userID, sampleStartupRequest())
	require.NoError(t, err)

	updated, err := env.sc.Startup.UpdateStatus(ctx, env.db, adminID, created.ID, &dto.UpdateStartupStatusRequest{
		Status:      models.StartupStatusApproved,
		ReviewNotes: "Good fit for the program",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StartupStatusApproved, updated.Status)
	assert.Equal(t, adminID, updated.ReviewedBy)

	approved, err := env.sc.Startup.List(env.db, repositories.ListFilter{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, approved, 1)

	require.NoError(t, env.sc.Startup.Delete(ctx, env.db, created.ID))

	_, err = env.sc.Startup.GetMine(env.db, userID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
