package repository

import (
	"context"
	"fmt"
	"time"

	"page-builder/internal/data/entity"
	"page-builder/pkg/database"

	"go.uber.org/zap"
)

// SessionRepository stores login sessions keyed by token.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValid(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepository struct {
	store database.KVStore
	log   *zap.Logger
}

func NewSessionRepository(store database.KVStore, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log,
	}
}

// Create stores a new session and drops dead ones while the document is
// open anyway, so the table does not grow without bound.
func (sr *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	now := time.Now()

	err := mutateDocument(ctx, sr.store, sessionsKey, func(doc *document[entity.Session]) error {
		for token, s := range doc.Records {
			if !s.Valid(now) {
				delete(doc.Records, token)
			}
		}
		doc.Records[session.Token.String()] = *session
		return nil
	})

	if err != nil {
		sr.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return err
	}

	return nil
}

// FindValid returns the session for token if it is unexpired and unrevoked,
// nil otherwise.
func (sr *sessionRepository) FindValid(ctx context.Context, token string) (*entity.Session, error) {
	doc, _, err := loadDocument[entity.Session](ctx, sr.store, sessionsKey)
	if err != nil {
		return nil, err
	}

	session, ok := doc.Records[token]
	if !ok || !session.Valid(time.Now()) {
		return nil, nil
	}

	return &session, nil
}

func (sr *sessionRepository) Revoke(ctx context.Context, token string) error {
	now := time.Now()

	err := mutateDocument(ctx, sr.store, sessionsKey, func(doc *document[entity.Session]) error {
		session, ok := doc.Records[token]
		if !ok || !session.Valid(now) {
			return fmt.Errorf("session: %w", entity.ErrInvalidSession)
		}
		session.RevokedAt = &now
		doc.Records[token] = session
		return nil
	})

	if err != nil {
		sr.log.Warn("Failed to revoke session", zap.Error(err))
		return err
	}

	return nil
}
