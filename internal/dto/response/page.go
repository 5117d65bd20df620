package response

import (
	"page-builder/internal/data/entity"
)

type PageResponse struct {
	Config entity.PageConfig `json:"config"`
}

// PublicPageResponse is what an unauthenticated visitor gets for a slug:
// the owner's display identity plus the config with only enabled links.
type PublicPageResponse struct {
	Name   string            `json:"name"`
	Slug   string            `json:"slug"`
	Config entity.PageConfig `json:"config"`
}
