// Package domain defines domain-level errors for the questions feature.
package domain

import "errors"

// ErrQuestionNotFound indicates that no question exists with the given ID.
var ErrQuestionNotFound = errors.New("question not found")
