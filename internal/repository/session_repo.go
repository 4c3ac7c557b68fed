package repository

import (
	"context"
	"time"

	"echocast/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description *string   `gorm:"column:description"`
	Filename    *string   `gorm:"column:filename"`
	FilePath    *string   `gorm:"column:file_path"`
	FileSize    *int64    `gorm:"column:file_size"`
	Duration    *int64    `gorm:"column:duration"`
	UserID      int64     `gorm:"column:user_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	var description, filename, filePath string
	var fileSize, duration int64
	if m.Description != nil {
		description = *m.Description
	}
	if m.Filename != nil {
		filename = *m.Filename
	}
	if m.FilePath != nil {
		filePath = *m.FilePath
	}
	if m.FileSize != nil {
		fileSize = *m.FileSize
	}
	if m.Duration != nil {
		duration = *m.Duration
	}

	return &domain.Session{
		ID:          m.ID,
		Title:       m.Title,
		Description: description,
		Filename:    filename,
		FilePath:    filePath,
		FileSize:    fileSize,
		Duration:    duration,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSessionModel(s *domain.Session) sessionModel {
	var description, filename, filePath *string
	var fileSize, duration *int64
	if s.Description != "" {
		v := s.Description
		description = &v
	}
	if s.Filename != "" {
		v := s.Filename
		filename = &v
	}
	if s.FilePath != "" {
		v := s.FilePath
		filePath = &v
	}
	if s.FileSize > 0 {
		v := s.FileSize
		fileSize = &v
	}
	if s.Duration > 0 {
		v := s.Duration
		duration = &v
	}

	return sessionModel{
		ID:          s.ID,
		Title:       s.Title,
		Description: description,
		Filename:    filename,
		FilePath:    filePath,
		FileSize:    fileSize,
		Duration:    duration,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := toSessionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

// GetByIDAndOwner filters by both id and owner in one query. A row owned by
// someone else surfaces as gorm.ErrRecordNotFound, same as a missing row.
func (r *SessionRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Session, error) {
	var models []sessionModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Session, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainSession(m))
	}
	return out, nil
}

// UpdateFileFields binds an uploaded file to a session. The ownership check
// and the mutation are the same statement, so a session deleted or never owned
// by the caller reports gorm.ErrRecordNotFound via zero rows affected.
func (r *SessionRepository) UpdateFileFields(ctx context.Context, id, ownerID int64, filename, filePath string, fileSize int64) error {
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"filename":   filename,
			"file_path":  filePath,
			"file_size":  fileSize,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&sessionModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFilePaths returns every non-empty file_path currently referenced by a
// session row. Used by the uploads cleanup tool.
func (r *SessionRepository) ListFilePaths(ctx context.Context) ([]string, error) {
	var paths []string
	tx := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("file_path IS NOT NULL AND file_path != ''").
		Pluck("file_path", &paths)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return paths, nil
}
