package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"page-builder/internal/data/entity"
	"page-builder/internal/usecase"
	"page-builder/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Admin  *AdminHandler
	Page   *PageHandler
	Public *PublicHandler
	User   *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Admin:  NewAdminHandler(service.Admin, log),
		Page:   NewPageHandler(service.Page, log),
		Public: NewPublicHandler(service.Public, log),
		User:   NewUserHandler(service.User, log),
	}
}

// handleServiceError maps the error taxonomy onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, entity.ErrDuplicateEmail),
		errors.Is(err, entity.ErrReservedEmail):
		log.Warn(operation+" failed - email conflict", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, entity.ErrWrongPassword),
		errors.Is(err, entity.ErrInvalidSession):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case errors.Is(err, entity.ErrBlocked):
		log.Warn(operation+" failed - account blocked", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
