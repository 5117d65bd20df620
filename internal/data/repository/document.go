package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"page-builder/internal/data/entity"
	"page-builder/pkg/database"
)

// Logical table keys in the record store.
const (
	usersKey    = "users"
	pagesKey    = "userPages"
	sessionsKey = "sessions"
)

// schemaVersion tags every stored document so future format changes can
// migrate on load. The original storage format carried no version at all.
const schemaVersion = 1

// casRetryLimit bounds how often a read-modify-write is replayed after
// losing a compare-and-swap race.
const casRetryLimit = 3

// document is the stored shape of one logical table: a version tag plus a
// flat id-keyed record map.
type document[T any] struct {
	SchemaVersion int          `json:"schemaVersion"`
	Records       map[string]T `json:"records"`
}

// decodeDocument parses a stored table. An unversioned raw record map (the
// legacy format) is migrated in place; anything else unparseable is
// ErrStorageCorrupt.
func decodeDocument[T any](data []byte) (*document[T], error) {
	var doc document[T]
	if err := json.Unmarshal(data, &doc); err == nil && doc.SchemaVersion >= 1 {
		if doc.Records == nil {
			doc.Records = map[string]T{}
		}
		return &doc, nil
	}

	var legacy map[string]T
	if err := json.Unmarshal(data, &legacy); err == nil {
		if legacy == nil {
			legacy = map[string]T{}
		}
		return &document[T]{SchemaVersion: schemaVersion, Records: legacy}, nil
	}

	return nil, entity.ErrStorageCorrupt
}

// loadDocument fetches and decodes one table. A key that was never written
// yields an empty document at database.CreateOnly, so the first write
// creates it.
func loadDocument[T any](ctx context.Context, store database.KVStore, key string) (*document[T], int64, error) {
	data, version, err := store.Get(ctx, key)
	if errors.Is(err, database.ErrKeyNotFound) {
		return &document[T]{SchemaVersion: schemaVersion, Records: map[string]T{}}, database.CreateOnly, nil
	}
	if err != nil {
		return nil, 0, err
	}

	doc, err := decodeDocument[T](data)
	if err != nil {
		return nil, 0, fmt.Errorf("table %s: %w", key, err)
	}

	return doc, version, nil
}

// mutateDocument runs fn over a fresh snapshot of the table and commits the
// result with compare-and-swap, replaying fn on conflict. Invariant checks
// inside fn therefore always see the state they will commit against, which
// is what makes duplicate-email enforcement race-free.
func mutateDocument[T any](ctx context.Context, store database.KVStore, key string, fn func(doc *document[T]) error) error {
	for attempt := 0; attempt < casRetryLimit; attempt++ {
		doc, version, err := loadDocument[T](ctx, store, key)
		if err != nil {
			return err
		}

		if err := fn(doc); err != nil {
			return err
		}

		doc.SchemaVersion = schemaVersion
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode table %s: %w", key, err)
		}

		err = store.Put(ctx, key, data, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, database.ErrVersionConflict) {
			return err
		}
	}

	return fmt.Errorf("table %s: %w", key, database.ErrVersionConflict)
}
