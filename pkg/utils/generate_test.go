package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	id := GenerateUUID()
	hex := strings.ReplaceAll(id.String(), "-", "")
	suffix := hex[len(hex)-4:]

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Ana Silva", want: "ana-silva-" + suffix},
		{name: "extra whitespace", in: "  Ana   Silva ", want: "ana-silva-" + suffix},
		{name: "single word", in: "Ana", want: "ana-" + suffix},
		{name: "empty name", in: "", want: suffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in, id))
		})
	}
}

func TestGenerateSlugShape(t *testing.T) {
	slug := GenerateSlug("Ana Silva", GenerateUUID())
	assert.Regexp(t, regexp.MustCompile(`^ana-silva-[0-9a-f]{4}$`), slug)
}

func TestNormalizeLinkURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "instagram.com/ana", want: "https://instagram.com/ana"},
		{in: "https://instagram.com/ana", want: "https://instagram.com/ana"},
		{in: "http://example.com", want: "http://example.com"},
		{in: "  example.com  ", want: "https://example.com"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLinkURL(tt.in))
	}
}
