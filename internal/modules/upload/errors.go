package upload

import "errors"

var (
	ErrUnsupportedType = errors.New("file type is not allowed")
	ErrSessionNotFound = errors.New("session not found")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile       = errors.New("file is empty")
)
