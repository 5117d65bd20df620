package adaptor

import (
	"encoding/json"
	"net/http"

	"page-builder/internal/dto/request"
	"page-builder/internal/usecase"
	"page-builder/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PageHandler struct {
	service usecase.PageService
	log     *zap.Logger
}

func NewPageHandler(service usecase.PageService, log *zap.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/page
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get page")
		return
	}

	utils.ResponseSuccess(w, "Page retrieved successfully", page)
}

// Save handles PUT /api/page
func (h *PageHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SavePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.Save(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save page")
		return
	}

	utils.ResponseSuccess(w, "Page saved successfully", page)
}

// AddLink handles POST /api/page/links
func (h *PageHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.AddLink(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add link")
		return
	}

	utils.ResponseCreated(w, "Link added successfully", page)
}

// UpdateLink handles PATCH /api/page/links/{id}
func (h *PageHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	linkID := chi.URLParam(r, "id")
	if linkID == "" {
		utils.ResponseBadRequest(w, "Link ID is required", nil)
		return
	}

	var req request.UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	page, err := h.service.UpdateLink(r.Context(), userID, linkID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update link")
		return
	}

	utils.ResponseSuccess(w, "Link updated successfully", page)
}

// RemoveLink handles DELETE /api/page/links/{id}
func (h *PageHandler) RemoveLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	linkID := chi.URLParam(r, "id")
	if linkID == "" {
		utils.ResponseBadRequest(w, "Link ID is required", nil)
		return
	}

	page, err := h.service.RemoveLink(r.Context(), userID, linkID)
	if err != nil {
		handleServiceError(w, h.log, err, "remove link")
		return
	}

	utils.ResponseSuccess(w, "Link removed successfully", page)
}

// UpdatePalette handles PUT /api/page/palette
func (h *PageHandler) UpdatePalette(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ColorPaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.UpdatePalette(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update palette")
		return
	}

	utils.ResponseSuccess(w, "Palette updated successfully", page)
}
