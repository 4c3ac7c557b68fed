package session

import (
	"context"
	"errors"
	"strings"

	"echocast/internal/domain"

	"gorm.io/gorm"
)

// Service contains the business logic for recording sessions. Every operation
// is scoped to the owning user; a caller can never see or touch another
// user's rows.
type Service struct {
	sessions SessionRepositoryInterface
}

func NewService(sessions SessionRepositoryInterface) *Service {
	return &Service{sessions: sessions}
}

func (s *Service) Create(ctx context.Context, owner *domain.User, req CreateSessionRequest) (*domain.Session, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	sess := &domain.Session{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		UserID:      owner.ID,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// List returns the owner's sessions, newest first. No sessions is an empty
// slice, not an error.
func (s *Service) List(ctx context.Context, owner *domain.User) ([]*domain.Session, error) {
	return s.sessions.ListByOwner(ctx, owner.ID)
}

func (s *Service) Get(ctx context.Context, owner *domain.User, id int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// Delete removes the session row. The stored file, if any, stays on disk;
// cmd/uploads_cleanup reclaims unreferenced files.
func (s *Service) Delete(ctx context.Context, owner *domain.User, id int64) error {
	err := s.sessions.DeleteByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}
