package upload

import (
	"context"
	"io"

	"echocast/internal/domain"
)

// SessionStore — the session operations the binder needs: the owner-scoped
// lookup and the owner-scoped file-fields update.
type SessionStore interface {
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Session, error)
	UpdateFileFields(ctx context.Context, id, ownerID int64, filename, filePath string, fileSize int64) error
}

// FileStore is the storage sink uploads are written to.
type FileStore interface {
	Save(name string, src io.Reader) (int64, error)
	Remove(name string) error
	Path(name string) string
}
