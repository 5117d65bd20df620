package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"page-builder/internal/data/entity"
	"page-builder/internal/data/repository"
	"page-builder/internal/dto/request"
	"page-builder/internal/dto/response"
	"page-builder/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateName(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	// The synthesized admin has no Users-table row
	if userID == AdminUserID {
		admin := response.UserToResponse(&entity.User{
			ID:        AdminUserID,
			Name:      us.config.Admin.Name,
			Email:     us.config.Admin.Email,
			Role:      entity.RoleAdmin,
			Status:    entity.StatusActive,
			CreatedAt: time.Now(),
		})
		return &admin, nil
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), entity.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateName persists a display-name edit to the user record and mirrors it
// onto the page record so the public page shows the new name.
func (us *userService) UpdateName(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Update the user record
	if err := us.repo.User.UpdateName(ctx, userID, req.Name); err != nil {
		return nil, err
	}

	// 3. Mirror onto the page display name. A missing page record is
	// tolerated here; public reads default it anyway.
	if err := us.repo.Page.UpdateDisplayName(ctx, userID, req.Name); err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), entity.ErrNotFound)
	}

	us.log.Info("User name updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}
