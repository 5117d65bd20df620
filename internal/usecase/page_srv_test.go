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

func registeredUserID(t *testing.T, svc *Service) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(registerAna(t, svc))
	require.NoError(t, err)
	return id
}

func TestPageSaveGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	linkID := uuid.NewString()
	saved, err := svc.Page.Save(ctx, userID, &request.SavePageRequest{
		ProfilePhoto: "data:image/png;base64,abc",
		HeaderImage:  "data:image/png;base64,def",
		Links: []request.PageLinkRequest{
			{ID: linkID, Label: "Site", URL: "https://example.com", Enabled: true},
		},
		ColorPalette: request.ColorPaletteRequest{
			Primary:    "#112233",
			Secondary:  "#445566",
			Background: "#778899",
			Text:       "#AABBCC",
		},
	})
	require.NoError(t, err)

	got, err := svc.Page.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, saved.Config, got.Config)
	assert.Equal(t, "#112233", got.Config.ColorPalette.Primary)
	require.Len(t, got.Config.Links, 1)
	assert.Equal(t, linkID, got.Config.Links[0].ID.String())
}

func TestPageGetDefaultsWhenMissing(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Page.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPageConfig(), got.Config)
}

func TestPageSaveMissingRecord(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Page.Save(context.Background(), uuid.New(), &request.SavePageRequest{
		ColorPalette: request.ColorPaletteRequest{
			Primary:    "#112233",
			Secondary:  "#445566",
			Background: "#778899",
			Text:       "#AABBCC",
		},
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAddLinkNormalizesURL(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	page, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{
		Label: "Instagram",
		URL:   "instagram.com/ana",
	})
	require.NoError(t, err)

	require.Len(t, page.Config.Links, 1)
	link := page.Config.Links[0]
	assert.Equal(t, "Instagram", link.Label)
	assert.Equal(t, "https://instagram.com/ana", link.URL)
	assert.True(t, link.Enabled)
}

func TestRemoveLinkKeepsRemaining(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	first, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "One", URL: "one.com"})
	require.NoError(t, err)
	page, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "Two", URL: "two.com"})
	require.NoError(t, err)
	require.Len(t, page.Config.Links, 2)

	firstID := first.Config.Links[0].ID
	page, err = svc.Page.RemoveLink(ctx, userID, firstID.String())
	require.NoError(t, err)

	require.Len(t, page.Config.Links, 1)
	assert.Equal(t, "Two", page.Config.Links[0].Label)
	assert.Equal(t, "https://two.com", page.Config.Links[0].URL)
	assert.True(t, page.Config.Links[0].Enabled)

	// Removing again is not found
	_, err = svc.Page.RemoveLink(ctx, userID, firstID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateLinkMergesFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	page, err := svc.Page.AddLink(ctx, userID, &request.AddLinkRequest{Label: "Site", URL: "example.com"})
	require.NoError(t, err)
	linkID := page.Config.Links[0].ID.String()

	disabled := false
	page, err = svc.Page.UpdateLink(ctx, userID, linkID, &request.UpdateLinkRequest{Enabled: &disabled})
	require.NoError(t, err)

	link := page.Config.Links[0]
	assert.False(t, link.Enabled)
	assert.Equal(t, "Site", link.Label)
	assert.Equal(t, "https://example.com", link.URL)

	_, err = svc.Page.UpdateLink(ctx, userID, uuid.NewString(), &request.UpdateLinkRequest{Enabled: &disabled})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdatePalette(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := registeredUserID(t, svc)

	page, err := svc.Page.UpdatePalette(ctx, userID, &request.ColorPaletteRequest{
		Primary:    "#000000",
		Secondary:  "#111111",
		Background: "#222222",
		Text:       "#333333",
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", page.Config.ColorPalette.Primary)
	assert.Equal(t, "#333333", page.Config.ColorPalette.Text)

	got, err := svc.Page.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, page.Config.ColorPalette, got.Config.ColorPalette)
}
