package repository

import (
	"context"
	"testing"
	"time"

	"page-builder/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPage(userID uuid.UUID) *entity.UserPage {
	return &entity.UserPage{
		UserID:    userID,
		UserName:  "Ana Silva",
		CreatedAt: time.Now(),
		Config:    entity.DefaultPageConfig(),
	}
}

func TestPageRepositoryMutateConfigMissingRecord(t *testing.T) {
	repo := NewPageRepository(newTestStore(t), zap.NewNop())

	_, err := repo.MutateConfig(context.Background(), uuid.New(), func(*entity.PageConfig) error {
		return nil
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPageRepositoryMutateConfigKeepsConcurrentWrite(t *testing.T) {
	repo := NewPageRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, testPage(userID)))

	theirs := entity.PageLink{ID: uuid.New(), Label: "First", URL: "https://one.com", Enabled: true}
	ours := entity.PageLink{ID: uuid.New(), Label: "Second", URL: "https://two.com", Enabled: true}

	// Another writer commits between this writer's read and its commit.
	// The version conflict must replay fn against the fresh state instead
	// of overwriting the other link.
	calls := 0
	config, err := repo.MutateConfig(ctx, userID, func(config *entity.PageConfig) error {
		calls++
		if calls == 1 {
			other := entity.DefaultPageConfig()
			other.Links = []entity.PageLink{theirs}
			require.NoError(t, repo.SaveConfig(ctx, userID, other))
		}
		config.Links = append(config.Links, ours)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	require.Len(t, config.Links, 2)
	assert.Equal(t, "First", config.Links[0].Label)
	assert.Equal(t, "Second", config.Links[1].Label)
}
