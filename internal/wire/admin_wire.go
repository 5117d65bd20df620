package wire

import (
	"page-builder/internal/adaptor"
	"page-builder/internal/data/repository"
	"page-builder/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures admin user management, requiring both a valid
// session AND the admin role
func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(log),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", adminHandler.ListUsers)
		r.Patch("/{id}/status", adminHandler.SetStatus)
	})
}
