package usecase

import (
	"context"
	"fmt"

	"page-builder/internal/data/entity"
	"page-builder/internal/data/repository"
	"page-builder/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService lists and blocks/unblocks accounts. It performs no
// authorization itself; the admin route middleware gates access.
type AdminService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	SetStatus(ctx context.Context, userID string, status string) (*response.UserResponse, error)
}

type adminService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAdminService(userRepo repository.UserRepository, log *zap.Logger) AdminService {
	return &adminService{
		userRepo: userRepo,
		log:      log,
	}
}

func (as *adminService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := as.userRepo.FindAll(ctx)
	if err != nil {
		as.log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	return response.UsersToResponse(users), nil
}

func (as *adminService) SetStatus(ctx context.Context, userID string, status string) (*response.UserResponse, error) {
	// 1. Parse inputs
	id, err := uuid.Parse(userID)
	if err != nil {
		as.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user ID")
	}

	userStatus := entity.UserStatus(status)
	if userStatus != entity.StatusActive && userStatus != entity.StatusBlocked {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	// 2. Overwrite status, unknown id surfaces as not found
	if err := as.userRepo.UpdateStatus(ctx, id, userStatus); err != nil {
		return nil, err
	}

	user, err := as.userRepo.FindByID(ctx, id)
	if err != nil {
		as.log.Error("Failed to reload user after status change", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, entity.ErrNotFound)
	}

	as.log.Info("User status updated",
		zap.String("user_id", userID),
		zap.String("status", status))

	resp := response.UserToResponse(user)
	return &resp, nil
}
