package domain

import "time"

// Session is one recording session owned by a user. The file fields stay
// empty until an upload has been bound to the session.
type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename,omitempty"`
	FilePath    string    `json:"file_path,omitempty"`
	FileSize    int64     `json:"file_size,omitempty"`
	Duration    int64     `json:"duration,omitempty"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasFile reports whether an upload has been bound to this session.
func (s *Session) HasFile() bool {
	return s.FilePath != ""
}
