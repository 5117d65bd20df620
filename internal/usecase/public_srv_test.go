package usecase

import (
	"context"
	"testing"

	"page-builder/internal/data/entity"
	"page-builder/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownSlug(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Public.Resolve(context.Background(), "nobody-0000")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestResolveFiltersDisabledLinks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	_, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "One", URL: "one.com"})
	require.NoError(t, err)
	page, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "Two", URL: "two.com"})
	require.NoError(t, err)
	_, err = svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "Three", URL: "three.com"})
	require.NoError(t, err)

	// Disable the middle link
	disabled := false
	_, err = svc.Page.UpdateLink(ctx, userID, page.Config.Links[1].ID.String(),
		&request.UpdateLinkRequest{Enabled: &disabled})
	require.NoError(t, err)

	resolved, err := svc.Public.Resolve(ctx, mustSlug(t, svc))
	require.NoError(t, err)

	require.Len(t, resolved.Config.Links, 2)
	assert.Equal(t, "One", resolved.Config.Links[0].Label)
	assert.Equal(t, "Three", resolved.Config.Links[1].Label)
}

func TestResolveBlockedOwnerStaysVisible(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	slug := mustSlug(t, svc)

	_, err := svc.Admin.SetStatus(ctx, userID.String(), "blocked")
	require.NoError(t, err)

	resolved, err := svc.Public.Resolve(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, slug, resolved.Slug)
}

func TestResolveUsesPageDisplayName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	_, err := svc.User.UpdateName(ctx, userID, &request.UpdateProfileRequest{Name: "Ana S."})
	require.NoError(t, err)

	resolved, err := svc.Public.Resolve(ctx, mustSlug(t, svc))
	require.NoError(t, err)
	assert.Equal(t, "Ana S.", resolved.Name)
}
