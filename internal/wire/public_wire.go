package wire

import (
	"page-builder/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wirePublic configures the unauthenticated public page route
func wirePublic(r chi.Router, publicHandler *adaptor.PublicHandler) {
	r.Get("/u/{slug}", publicHandler.Resolve)
}
