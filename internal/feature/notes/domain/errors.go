// Package domain defines domain-level errors for the notes feature.
package domain

import "errors"

// ErrNoteNotFound indicates that no note exists with the given ID.
var ErrNoteNotFound = errors.New("note not found")
