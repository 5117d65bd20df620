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

func TestListUsers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, u := range []struct{ name, email string }{
		{"Ana Silva", "ana@example.com"},
		{"Bruno Costa", "bruno@example.com"},
	} {
		_, err := svc.Auth.Register(ctx, &request.RegisterRequest{
			Name: u.name, Email: u.email, Password: "Senha123",
		})
		require.NoError(t, err)
	}

	users, err := svc.Admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, entity.RoleUser, u.Role)
		assert.Equal(t, entity.StatusActive, u.Status)
	}
}

func TestSetStatusUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Admin.SetStatus(context.Background(), uuid.NewString(), "blocked")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Admin.SetStatus(context.Background(), "not-a-uuid", "blocked")
	assert.Error(t, err)
}

func TestSetStatusReturnsUpdatedUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registerAna(t, svc)

	user, err := svc.Admin.SetStatus(ctx, userID, "blocked")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, user.Status)

	user, err = svc.Admin.SetStatus(ctx, userID, "active")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, user.Status)
}
