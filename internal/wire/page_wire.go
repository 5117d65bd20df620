package wire

import (
	"page-builder/internal/adaptor"
	"page-builder/internal/data/repository"
	"page-builder/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wirePage configures the dashboard page-editing routes, all session-gated
func wirePage(
	r chi.Router,
	pageHandler *adaptor.PageHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.Session, log)).Route("/api/page", func(r chi.Router) {
		r.Get("/", pageHandler.Get)
		r.Put("/", pageHandler.Save)
		r.Post("/links", pageHandler.AddLink)
		r.Patch("/links/{id}", pageHandler.UpdateLink)
		r.Delete("/links/{id}", pageHandler.RemoveLink)
		r.Put("/palette", pageHandler.UpdatePalette)
	})
}
