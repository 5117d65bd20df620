package usecase

import (
	"context"
	"fmt"

	"page-builder/internal/data/entity"
	"page-builder/internal/data/repository"
	"page-builder/internal/dto/response"

	"go.uber.org/zap"
)

// PublicService resolves a public slug to a rendered page: slug -> user ->
// page record -> config with only enabled links. No authentication, and no
// visibility restriction for blocked owners.
type PublicService interface {
	Resolve(ctx context.Context, slug string) (*response.PublicPageResponse, error)
}

type publicService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPublicService(repo *repository.Repository, log *zap.Logger) PublicService {
	return &publicService{
		repo: repo,
		log:  log,
	}
}

func (s *publicService) Resolve(ctx context.Context, slug string) (*response.PublicPageResponse, error) {
	// 1. Find the owning user
	user, err := s.repo.User.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to resolve slug", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("page %s: %w", slug, entity.ErrNotFound)
	}

	// 2. Fetch the page config, defaults if the record is missing
	page, err := s.repo.Page.Get(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to get page for slug", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	name := user.Name
	config := entity.DefaultPageConfig()
	if page != nil {
		config = page.Config
		if page.UserName != "" {
			name = page.UserName
		}
	}

	// 3. Only enabled links are public, original order preserved
	enabled := make([]entity.PageLink, 0, len(config.Links))
	for _, link := range config.Links {
		if link.Enabled {
			enabled = append(enabled, link)
		}
	}
	config.Links = enabled

	return &response.PublicPageResponse{
		Name:   name,
		Slug:   user.PageSlug,
		Config: config,
	}, nil
}
