package repository

import (
	"context"
	"fmt"
	"sort"

	"page-builder/internal/data/entity"
	"page-builder/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserRepository is the single gatekeeper for the Users table. Auth and
// admin code both mutate through it, so the unique-email invariant is
// enforced in exactly one place.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, passwordHash string) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindBySlug(ctx context.Context, slug string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	CredentialByEmail(ctx context.Context, email string) (*entity.User, string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

// userRecord co-locates the credential with the user, mirroring the stored
// users table shape: id -> {user, passwordHash}.
type userRecord struct {
	User         entity.User `json:"user"`
	PasswordHash string      `json:"passwordHash"`
}

type userRepository struct {
	store database.KVStore
	log   *zap.Logger
}

func NewUserRepository(store database.KVStore, log *zap.Logger) UserRepository {
	return &userRepository{
		store: store,
		log:   log,
	}
}

// Create inserts a new user with its credential. The duplicate-email check
// and the slug-collision resuffix run inside the CAS loop, so they hold
// against concurrent registrations.
func (ur *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	baseSlug := user.PageSlug

	err := mutateDocument(ctx, ur.store, usersKey, func(doc *document[userRecord]) error {
		slugs := make(map[string]bool, len(doc.Records))
		for _, rec := range doc.Records {
			if rec.User.Email == user.Email {
				return entity.ErrDuplicateEmail
			}
			slugs[rec.User.PageSlug] = true
		}

		// Retry-with-suffix until the slug is free.
		user.PageSlug = baseSlug
		for n := 2; slugs[user.PageSlug]; n++ {
			user.PageSlug = fmt.Sprintf("%s-%d", baseSlug, n)
		}

		doc.Records[user.ID.String()] = userRecord{User: *user, PasswordHash: passwordHash}
		return nil
	})

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return err
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	doc, _, err := loadDocument[userRecord](ctx, ur.store, usersKey)
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Records[id.String()]
	if !ok {
		return nil, nil
	}

	user := rec.User
	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, _, err := ur.CredentialByEmail(ctx, email)
	return user, err
}

func (ur *userRepository) FindBySlug(ctx context.Context, slug string) (*entity.User, error) {
	doc, _, err := loadDocument[userRecord](ctx, ur.store, usersKey)
	if err != nil {
		return nil, err
	}

	// Linear scan, same as the resolver always worked.
	for _, rec := range doc.Records {
		if rec.User.PageSlug == slug {
			user := rec.User
			return &user, nil
		}
	}

	return nil, nil
}

// FindAll returns every user ordered by creation time. The stored map has
// no iteration order, so CreatedAt stands in for insertion order.
func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	doc, _, err := loadDocument[userRecord](ctx, ur.store, usersKey)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(doc.Records))
	for _, rec := range doc.Records {
		user := rec.User
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID.String() < users[j].ID.String()
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

// CredentialByEmail returns the user and its stored password hash, nil when
// the email is unknown. Exact case-sensitive match.
func (ur *userRepository) CredentialByEmail(ctx context.Context, email string) (*entity.User, string, error) {
	doc, _, err := loadDocument[userRecord](ctx, ur.store, usersKey)
	if err != nil {
		return nil, "", err
	}

	for _, rec := range doc.Records {
		if rec.User.Email == email {
			user := rec.User
			return &user, rec.PasswordHash, nil
		}
	}

	return nil, "", nil
}

// UpdateStatus overwrites the status of one user. Unknown ids are an
// explicit ErrNotFound, never a silent no-op.
func (ur *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	err := mutateDocument(ctx, ur.store, usersKey, func(doc *document[userRecord]) error {
		rec, ok := doc.Records[id.String()]
		if !ok {
			return fmt.Errorf("user %s: %w", id.String(), entity.ErrNotFound)
		}
		rec.User.Status = status
		doc.Records[id.String()] = rec
		return nil
	})

	if err != nil {
		ur.log.Warn("Failed to update user status",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.String("status", string(status)),
		)
		return err
	}

	return nil
}

func (ur *userRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	err := mutateDocument(ctx, ur.store, usersKey, func(doc *document[userRecord]) error {
		rec, ok := doc.Records[id.String()]
		if !ok {
			return fmt.Errorf("user %s: %w", id.String(), entity.ErrNotFound)
		}
		rec.User.Name = name
		doc.Records[id.String()] = rec
		return nil
	})

	if err != nil {
		ur.log.Warn("Failed to update user name",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return err
	}

	return nil
}
