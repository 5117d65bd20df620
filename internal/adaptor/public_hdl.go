package adaptor

import (
	"net/http"

	"page-builder/internal/usecase"
	"page-builder/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PublicHandler struct {
	service usecase.PublicService
	log     *zap.Logger
}

func NewPublicHandler(service usecase.PublicService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		log:     log,
	}
}

// Resolve handles GET /u/{slug} - the public, unauthenticated page view
func (h *PublicHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	page, err := h.service.Resolve(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "resolve page")
		return
	}

	utils.ResponseSuccess(w, "Page resolved successfully", page)
}
