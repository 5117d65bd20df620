package request

// PageLinkRequest is one link inside a full-config save.
type PageLinkRequest struct {
	ID      string `json:"id" validate:"omitempty,uuid"`
	Label   string `json:"label" validate:"required,max=100"`
	URL     string `json:"url" validate:"required"`
	Enabled bool   `json:"enabled"`
}

type ColorPaletteRequest struct {
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
	Text       string `json:"text" validate:"required,hexcolor"`
}

// SavePageRequest replaces the whole page config in one write.
type SavePageRequest struct {
	ProfilePhoto string              `json:"profilePhoto"`
	HeaderImage  string              `json:"headerImage"`
	Links        []PageLinkRequest   `json:"links" validate:"dive"`
	ColorPalette ColorPaletteRequest `json:"colorPalette" validate:"required"`
}

type AddLinkRequest struct {
	Label string `json:"label" validate:"required,max=100"`
	URL   string `json:"url" validate:"required"`
}

// UpdateLinkRequest carries a partial link edit; nil fields stay untouched.
type UpdateLinkRequest struct {
	Label   *string `json:"label,omitempty" validate:"omitempty,max=100"`
	URL     *string `json:"url,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}
