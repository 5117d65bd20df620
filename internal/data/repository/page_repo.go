package repository

import (
	"context"
	"fmt"

	"page-builder/internal/data/entity"
	"page-builder/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageRepository owns the Pages table: one page record per user id.
type PageRepository interface {
	Create(ctx context.Context, page *entity.UserPage) error
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserPage, error)
	SaveConfig(ctx context.Context, userID uuid.UUID, config entity.PageConfig) error
	MutateConfig(ctx context.Context, userID uuid.UUID, fn func(config *entity.PageConfig) error) (*entity.PageConfig, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, name string) error
}

type pageRepository struct {
	store database.KVStore
	log   *zap.Logger
}

func NewPageRepository(store database.KVStore, log *zap.Logger) PageRepository {
	return &pageRepository{
		store: store,
		log:   log,
	}
}

func (pr *pageRepository) Create(ctx context.Context, page *entity.UserPage) error {
	err := mutateDocument(ctx, pr.store, pagesKey, func(doc *document[entity.UserPage]) error {
		doc.Records[page.UserID.String()] = *page
		return nil
	})

	if err != nil {
		pr.log.Error("Failed to create page record",
			zap.Error(err),
			zap.String("user_id", page.UserID.String()),
		)
		return err
	}

	return nil
}

func (pr *pageRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.UserPage, error) {
	doc, _, err := loadDocument[entity.UserPage](ctx, pr.store, pagesKey)
	if err != nil {
		return nil, err
	}

	page, ok := doc.Records[userID.String()]
	if !ok {
		return nil, nil
	}

	return &page, nil
}

// SaveConfig overwrites the whole config of an existing page record.
// A missing record is ErrNotFound: registration creates the record, so a
// miss here means a stale or bogus id and must not be swallowed.
func (pr *pageRepository) SaveConfig(ctx context.Context, userID uuid.UUID, config entity.PageConfig) error {
	err := mutateDocument(ctx, pr.store, pagesKey, func(doc *document[entity.UserPage]) error {
		page, ok := doc.Records[userID.String()]
		if !ok {
			return fmt.Errorf("page for user %s: %w", userID.String(), entity.ErrNotFound)
		}
		page.Config = config
		doc.Records[userID.String()] = page
		return nil
	})

	if err != nil {
		pr.log.Warn("Failed to save page config",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return err
	}

	return nil
}

// MutateConfig runs fn over the current config inside the CAS loop, the
// same way UserRepository.Create guards its invariants, so two concurrent
// link edits cannot lose each other's writes. fn may be replayed after a
// conflict. Returns the committed config.
func (pr *pageRepository) MutateConfig(ctx context.Context, userID uuid.UUID, fn func(config *entity.PageConfig) error) (*entity.PageConfig, error) {
	var committed entity.PageConfig

	err := mutateDocument(ctx, pr.store, pagesKey, func(doc *document[entity.UserPage]) error {
		page, ok := doc.Records[userID.String()]
		if !ok {
			return fmt.Errorf("page for user %s: %w", userID.String(), entity.ErrNotFound)
		}
		if err := fn(&page.Config); err != nil {
			return err
		}
		doc.Records[userID.String()] = page
		committed = page.Config
		return nil
	})

	if err != nil {
		pr.log.Warn("Failed to mutate page config",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, err
	}

	return &committed, nil
}

func (pr *pageRepository) UpdateDisplayName(ctx context.Context, userID uuid.UUID, name string) error {
	err := mutateDocument(ctx, pr.store, pagesKey, func(doc *document[entity.UserPage]) error {
		page, ok := doc.Records[userID.String()]
		if !ok {
			return fmt.Errorf("page for user %s: %w", userID.String(), entity.ErrNotFound)
		}
		page.UserName = name
		doc.Records[userID.String()] = page
		return nil
	})

	if err != nil {
		pr.log.Warn("Failed to update page display name",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return err
	}

	return nil
}
