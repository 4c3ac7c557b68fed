package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"echocast/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllowedExtensions defines which audio/video file types are accepted.
var AllowedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".mp4":  true,
	".webm": true,
	".ogg":  true,
}

// Result describes a stored upload. FileSize is the byte count actually
// written, not what the caller declared.
type Result struct {
	Filename  string `json:"filename"`
	FilePath  string `json:"file_path"`
	FileSize  int64  `json:"file_size"`
	SessionID *int64 `json:"session_id,omitempty"`
}

// Service validates an incoming file, persists it to the file store and,
// when a session id is given, binds the file to that session. A failed bind
// never leaves an orphaned file behind.
type Service struct {
	sessions SessionStore
	files    FileStore
	maxSize  int64
}

func NewService(sessions SessionStore, files FileStore, maxSize int64) *Service {
	return &Service{sessions: sessions, files: files, maxSize: maxSize}
}

// Accept runs the full upload flow: validate, store, bind. When sessionID is
// given the session is resolved before any bytes are written, so a bad id
// costs no disk I/O.
func (s *Service) Accept(ctx context.Context, owner *domain.User, sessionID *int64, originalName string, declaredSize int64, src io.Reader) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !AllowedExtensions[ext] {
		return nil, ErrUnsupportedType
	}
	if declaredSize == 0 {
		return nil, ErrEmptyFile
	}
	if declaredSize > s.maxSize {
		return nil, ErrFileTooLarge
	}

	if sessionID != nil {
		if _, err := s.sessions.GetByIDAndOwner(ctx, *sessionID, owner.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, err
		}
	}

	// Collision-proof stored name: concurrent uploads may share the
	// original filename.
	storedName := fmt.Sprintf("%s_%s%s", uuid.NewString(), sanitizeName(originalName), ext)

	written, err := s.files.Save(storedName, src)
	if err != nil {
		return nil, err
	}

	filePath := s.files.Path(storedName)

	if sessionID != nil {
		if err := s.sessions.UpdateFileFields(ctx, *sessionID, owner.ID, originalName, filePath, written); err != nil {
			// The session vanished between the check and the bind, or
			// the store failed. Either way the file must not survive.
			_ = s.files.Remove(storedName)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, fmt.Errorf("failed to bind upload to session: %w", err)
		}
	}

	return &Result{
		Filename:  originalName,
		FilePath:  filePath,
		FileSize:  written,
		SessionID: sessionID,
	}, nil
}

// AcceptForSession uploads directly to one session and returns the refreshed
// session row. The session is resolved up front so a missing or foreign id
// fails before any bytes move.
func (s *Service) AcceptForSession(ctx context.Context, owner *domain.User, sessionID int64, originalName string, declaredSize int64, src io.Reader) (*domain.Session, error) {
	if _, err := s.sessions.GetByIDAndOwner(ctx, sessionID, owner.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if _, err := s.Accept(ctx, owner, &sessionID, originalName, declaredSize, src); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByIDAndOwner(ctx, sessionID, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
