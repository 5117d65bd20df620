package usecase

import (
	"context"
	"testing"

	"page-builder/internal/data/entity"
	"page-builder/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	profile, err := svc.User.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", profile.Name)
	assert.Equal(t, "ana@example.com", profile.Email)

	_, err = svc.User.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetProfileSynthesizedAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	profile, err := svc.User.GetProfile(context.Background(), AdminUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
	assert.Equal(t, "admin@sistema.com", profile.Email)
}

func TestUpdateNamePersists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	updated, err := svc.User.UpdateName(ctx, userID, &request.UpdateProfileRequest{Name: "Ana Souza"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", updated.Name)

	// Survives a fresh read
	profile, err := svc.User.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", profile.Name)

	// Slug never changes with the name
	assert.Regexp(t, `^ana-silva-[0-9a-f]{4}$`, profile.PageSlug)
}
