package session

import (
	"context"

	"echocast/internal/domain"
)

// SessionRepositoryInterface — only the methods the session service uses
type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Session, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Session, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
}
