package usecase

import (
	"context"
	"fmt"

	"page-builder/internal/data/entity"
	"page-builder/internal/data/repository"
	"page-builder/internal/dto/request"
	"page-builder/internal/dto/response"
	"page-builder/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageService reads and writes a user's page configuration. Every mutation
// is persisted immediately; batching edits is the client's concern.
type PageService interface {
	Get(ctx context.Context, userID uuid.UUID) (*response.PageResponse, error)
	Save(ctx context.Context, userID uuid.UUID, req *request.SavePageRequest) (*response.PageResponse, error)
	AddLink(ctx context.Context, userID uuid.UUID, req *request.AddLinkRequest) (*response.PageResponse, error)
	UpdateLink(ctx context.Context, userID uuid.UUID, linkID string, req *request.UpdateLinkRequest) (*response.PageResponse, error)
	RemoveLink(ctx context.Context, userID uuid.UUID, linkID string) (*response.PageResponse, error)
	UpdatePalette(ctx context.Context, userID uuid.UUID, req *request.ColorPaletteRequest) (*response.PageResponse, error)
}

type pageService struct {
	pageRepo repository.PageRepository
	log      *zap.Logger
}

func NewPageService(pageRepo repository.PageRepository, log *zap.Logger) PageService {
	return &pageService{
		pageRepo: pageRepo,
		log:      log,
	}
}

// Get returns the stored config, or the defaults when no page record
// exists. The defensive fallback keeps reads total.
func (ps *pageService) Get(ctx context.Context, userID uuid.UUID) (*response.PageResponse, error) {
	page, err := ps.pageRepo.Get(ctx, userID)
	if err != nil {
		ps.log.Error("Failed to get page", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	config := entity.DefaultPageConfig()
	if page != nil {
		config = page.Config
	}

	return &response.PageResponse{Config: config}, nil
}

// Save replaces the whole config in one write.
func (ps *pageService) Save(ctx context.Context, userID uuid.UUID, req *request.SavePageRequest) (*response.PageResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Save page validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Convert, keeping link ids stable and minting ids for new links
	links := make([]entity.PageLink, 0, len(req.Links))
	for _, l := range req.Links {
		id, err := uuid.Parse(l.ID)
		if err != nil {
			id = utils.GenerateUUID()
		}
		links = append(links, entity.PageLink{
			ID:      id,
			Label:   l.Label,
			URL:     utils.NormalizeLinkURL(l.URL),
			Enabled: l.Enabled,
		})
	}

	config := entity.PageConfig{
		ProfilePhoto: req.ProfilePhoto,
		HeaderImage:  req.HeaderImage,
		Links:        links,
		ColorPalette: entity.ColorPalette{
			Primary:    req.ColorPalette.Primary,
			Secondary:  req.ColorPalette.Secondary,
			Background: req.ColorPalette.Background,
			Text:       req.ColorPalette.Text,
		},
	}

	// 3. Persist
	if err := ps.pageRepo.SaveConfig(ctx, userID, config); err != nil {
		return nil, err
	}

	ps.log.Info("Page config saved",
		zap.String("user_id", userID.String()),
		zap.Int("links", len(config.Links)))

	return &response.PageResponse{Config: config}, nil
}

func (ps *pageService) AddLink(ctx context.Context, userID uuid.UUID, req *request.AddLinkRequest) (*response.PageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Add link validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	link := entity.PageLink{
		ID:      utils.GenerateUUID(),
		Label:   req.Label,
		URL:     utils.NormalizeLinkURL(req.URL),
		Enabled: true,
	}

	return ps.mutateLinks(ctx, userID, func(links []entity.PageLink) ([]entity.PageLink, error) {
		return append(links, link), nil
	})
}

func (ps *pageService) UpdateLink(ctx context.Context, userID uuid.UUID, linkID string, req *request.UpdateLinkRequest) (*response.PageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update link validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return ps.mutateLinks(ctx, userID, func(links []entity.PageLink) ([]entity.PageLink, error) {
		for i := range links {
			if links[i].ID.String() != linkID {
				continue
			}
			if req.Label != nil {
				links[i].Label = *req.Label
			}
			if req.URL != nil {
				links[i].URL = utils.NormalizeLinkURL(*req.URL)
			}
			if req.Enabled != nil {
				links[i].Enabled = *req.Enabled
			}
			return links, nil
		}
		return nil, fmt.Errorf("link %s: %w", linkID, entity.ErrNotFound)
	})
}

func (ps *pageService) RemoveLink(ctx context.Context, userID uuid.UUID, linkID string) (*response.PageResponse, error) {
	return ps.mutateLinks(ctx, userID, func(links []entity.PageLink) ([]entity.PageLink, error) {
		out := make([]entity.PageLink, 0, len(links))
		for _, l := range links {
			if l.ID.String() != linkID {
				out = append(out, l)
			}
		}
		if len(out) == len(links) {
			return nil, fmt.Errorf("link %s: %w", linkID, entity.ErrNotFound)
		}
		return out, nil
	})
}

func (ps *pageService) UpdatePalette(ctx context.Context, userID uuid.UUID, req *request.ColorPaletteRequest) (*response.PageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update palette validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	config, err := ps.pageRepo.MutateConfig(ctx, userID, func(config *entity.PageConfig) error {
		config.ColorPalette = entity.ColorPalette{
			Primary:    req.Primary,
			Secondary:  req.Secondary,
			Background: req.Background,
			Text:       req.Text,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.log.Info("Page palette updated", zap.String("user_id", userID.String()))
	return &response.PageResponse{Config: *config}, nil
}

// ==================== HELPER METHODS ====================

// mutateLinks rewrites the link list through the repository's CAS loop, so
// a mutation that raced another writer is replayed against fresh state
// instead of overwriting it. A missing page record is ErrNotFound:
// registration creates the record, so a miss means a stale or bogus id.
func (ps *pageService) mutateLinks(ctx context.Context, userID uuid.UUID, fn func([]entity.PageLink) ([]entity.PageLink, error)) (*response.PageResponse, error) {
	config, err := ps.pageRepo.MutateConfig(ctx, userID, func(config *entity.PageConfig) error {
		links, err := fn(config.Links)
		if err != nil {
			return err
		}
		config.Links = links
		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.log.Info("Page links updated",
		zap.String("user_id", userID.String()),
		zap.Int("links", len(config.Links)))

	return &response.PageResponse{Config: *config}, nil
}
