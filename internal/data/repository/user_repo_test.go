package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"page-builder/internal/data/entity"
	"page-builder/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) database.KVStore {
	t.Helper()
	store, err := database.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func testUser(name, email, slug string) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      entity.RoleUser,
		Status:    entity.StatusActive,
		CreatedAt: time.Now(),
		PageSlug:  slug,
	}
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	user := testUser("Ana Silva", "ana@example.com", "ana-silva-1a2b")
	require.NoError(t, repo.Create(ctx, user, "hash"))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, "ana-silva-1a2b", found.PageSlug)

	found, err = repo.FindBySlug(ctx, "ana-silva-1a2b")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	found, hash, err := repo.CredentialByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hash", hash)

	found, err = repo.FindByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("Ana", "ana@example.com", "ana-1111"), "h1"))

	err := repo.Create(ctx, testUser("Other Ana", "ana@example.com", "other-ana-2222"), "h2")
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositorySlugCollisionResuffix(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("Ana", "one@example.com", "ana-abcd"), "h"))

	second := testUser("Ana", "two@example.com", "ana-abcd")
	require.NoError(t, repo.Create(ctx, second, "h"))
	assert.Equal(t, "ana-abcd-2", second.PageSlug)

	third := testUser("Ana", "three@example.com", "ana-abcd")
	require.NoError(t, repo.Create(ctx, third, "h"))
	assert.Equal(t, "ana-abcd-3", third.PageSlug)
}

func TestUserRepositoryFindAllOrder(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	base := time.Now()
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		u := testUser("U", email, uuid.NewString()[:8])
		u.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, u, "h"))
	}

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "b@x.com", users[1].Email)
	assert.Equal(t, "c@x.com", users[2].Email)
}

func TestUserRepositoryUpdateStatus(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	user := testUser("Ana", "ana@example.com", "ana-1234")
	require.NoError(t, repo.Create(ctx, user, "h"))

	require.NoError(t, repo.UpdateStatus(ctx, user.ID, entity.StatusBlocked))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, found.Status)

	// Unknown id is an explicit not-found, never a silent no-op
	err = repo.UpdateStatus(ctx, uuid.New(), entity.StatusActive)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepositoryLegacyDocumentMigration(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store, zap.NewNop())
	ctx := context.Background()

	// Unversioned raw record map, the pre-versioning storage format
	user := testUser("Ana", "ana@example.com", "ana-1234")
	legacy := map[string]userRecord{
		user.ID.String(): {User: *user, PasswordHash: "h"},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "users", data, database.CreateOnly))

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	// A write upgrades the stored document to the versioned format
	require.NoError(t, repo.UpdateStatus(ctx, user.ID, entity.StatusBlocked))

	raw, _, err := store.Get(ctx, "users")
	require.NoError(t, err)
	var doc struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, 1, doc.SchemaVersion)
}

func TestUserRepositoryCorruptDocument(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "users", []byte(`"not a table"`), database.CreateOnly))

	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, entity.ErrStorageCorrupt)

	// Mutations refuse to touch a corrupt table
	err = repo.UpdateStatus(ctx, uuid.New(), entity.StatusBlocked)
	assert.ErrorIs(t, err, entity.ErrStorageCorrupt)
}
