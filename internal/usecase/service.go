package usecase

import (
	"page-builder/internal/data/repository"
	"page-builder/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Admin  AdminService
	Page   PageService
	Public PublicService
	User   UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Admin:  NewAdminService(repo.User, log),
		Page:   NewPageService(repo.Page, log),
		Public: NewPublicService(repo, log),
		User:   NewUserService(repo, config, log),
	}
}
