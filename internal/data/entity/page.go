package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageLink is one button on a public page. Enabled gates public visibility
// without deleting the link.
type PageLink struct {
	ID      uuid.UUID `json:"id"`
	Label   string    `json:"label"`
	URL     string    `json:"url"`
	Enabled bool      `json:"enabled"`
}

type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// PageConfig is the customizable appearance/content of a user's public page.
// Links is display order.
type PageConfig struct {
	ProfilePhoto string       `json:"profilePhoto"`
	HeaderImage  string       `json:"headerImage"`
	Links        []PageLink   `json:"links"`
	ColorPalette ColorPalette `json:"colorPalette"`
}

// UserPage is the stored page record, one per user, created at registration.
type UserPage struct {
	UserID    uuid.UUID  `json:"userId"`
	UserName  string     `json:"userName"`
	CreatedAt time.Time  `json:"createdAt"`
	Config    PageConfig `json:"config"`
}

// DefaultPageConfig returns the config every new page starts with.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		ProfilePhoto: "",
		HeaderImage:  "",
		Links:        []PageLink{},
		ColorPalette: ColorPalette{
			Primary:    "#8B5CF6",
			Secondary:  "#A78BFA",
			Background: "#1A1A2E",
			Text:       "#FFFFFF",
		},
	}
}
