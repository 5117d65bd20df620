package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== SLUG ====================

// slugSuffixLen is how many trailing hex characters of the user id end up
// on the slug, e.g. "ana-silva-3f2c".
const slugSuffixLen = 4

// GenerateSlug derives the public page slug from the display name and the
// user id: lowercase, whitespace collapsed to hyphens, plus a short id
// suffix for uniqueness. Never regenerated after registration.
func GenerateSlug(name string, id uuid.UUID) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.Join(strings.Fields(base), "-")

	hex := strings.ReplaceAll(id.String(), "-", "")
	suffix := hex[len(hex)-slugSuffixLen:]

	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// ==================== LINK URL ====================

// NormalizeLinkURL prefixes schemeless URLs with https so stored links are
// always directly navigable.
func NormalizeLinkURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return url
	}
	if strings.Contains(url, "://") {
		return url
	}
	return "https://" + url
}
