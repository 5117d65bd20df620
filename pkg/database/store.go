package database

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Get when the key has never been written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrVersionConflict is returned by Put when expectedVersion does not
	// match the stored version, meaning another writer committed first.
	ErrVersionConflict = errors.New("version conflict")
)

// CreateOnly is the expectedVersion to pass when the key must not exist yet.
const CreateOnly int64 = 0

// KVStore is a versioned key-value store. Every logical table is one key
// holding a serialized document; Put is a compare-and-swap on the key's
// version, which is what closes the concurrent lost-update gap two writers
// would otherwise race into.
type KVStore interface {
	// Get returns the stored value and its current version.
	Get(ctx context.Context, key string) ([]byte, int64, error)

	// Put writes value if the stored version equals expectedVersion
	// (CreateOnly for a key that must not exist). The committed version
	// is expectedVersion+1.
	Put(ctx context.Context, key string, value []byte, expectedVersion int64) error

	Ping(ctx context.Context) error
	Close()
}
