package repository

import (
	"page-builder/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Page    PageRepository
	Session SessionRepository
}

func NewRepository(store database.KVStore, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(store, log),
		Page:    NewPageRepository(store, log),
		Session: NewSessionRepository(store, log),
	}
}
