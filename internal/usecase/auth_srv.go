package usecase

import (
	"context"
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

// AdminUserID identifies the synthesized admin account. It never exists in
// the Users table; login against the reserved credentials builds the user
// in memory.
var AdminUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Reserved admin email can never be registered
	if req.Email == s.config.Admin.Email {
		return nil, entity.ErrReservedEmail
	}

	// 3. Hash password
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Build user entity
	now := time.Now()
	id := utils.GenerateUUID()
	user := &entity.User{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Role:      entity.RoleUser,
		Status:    entity.StatusActive,
		CreatedAt: now,
		PageSlug:  utils.GenerateSlug(req.Name, id),
	}

	// 5. Persist user + credential in one commit. The duplicate-email
	// check happens inside this write, so a failure here leaves nothing
	// behind.
	if err := s.repo.User.Create(ctx, user, passwordHash); err != nil {
		return nil, err
	}

	// 6. Create the default page record. Reads of a missing page fall
	// back to defaults, so a failure here is logged, not fatal.
	page := &entity.UserPage{
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: now,
		Config:    entity.DefaultPageConfig(),
	}
	if err := s.repo.Page.Create(ctx, page); err != nil {
		s.log.Error("Failed to create default page",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	// 7. Auto login after register
	session, err := s.createSession(ctx, user.ID, user.Role)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("page_slug", user.PageSlug))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Reserved admin credentials bypass the Users table entirely. A
	// non-matching password falls through to the normal lookup, where the
	// reserved email can never exist.
	if req.Email == s.config.Admin.Email && req.Password == s.config.Admin.Password {
		admin := s.adminUser()
		session, err := s.createSession(ctx, admin.ID, entity.RoleAdmin)
		if err != nil {
			s.log.Error("Failed to create admin session", zap.Error(err))
			return nil, fmt.Errorf("failed to create session")
		}

		s.log.Info("Admin logged in")
		return response.AuthToResponse(admin, session), nil
	}

	// 3. Find user by email (exact match)
	user, passwordHash, err := s.repo.User.CredentialByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("email: %w", entity.ErrNotFound)
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, passwordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, entity.ErrWrongPassword
	}

	// 5. Blocked accounts cannot log in
	if user.IsBlocked() {
		s.log.Warn("Blocked user tried to login", zap.String("user_id", user.ID.String()))
		return nil, entity.ErrBlocked
	}

	// 6. Create session
	session, err := s.createSession(ctx, user.ID, user.Role)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Warn("Failed to revoke session", zap.Error(err))
		return err
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) adminUser() *entity.User {
	return &entity.User{
		ID:        AdminUserID,
		Name:      s.config.Admin.Name,
		Email:     s.config.Admin.Email,
		Role:      entity.RoleAdmin,
		Status:    entity.StatusActive,
		CreatedAt: time.Now(),
		PageSlug:  "",
	}
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, role entity.UserRole) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
