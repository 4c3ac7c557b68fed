package session

import "errors"

var (
	// ErrSessionNotFound covers both a missing row and a row owned by a
	// different user; the two are deliberately indistinguishable.
	ErrSessionNotFound = errors.New("session not found")
	ErrTitleRequired   = errors.New("title is required")
)
