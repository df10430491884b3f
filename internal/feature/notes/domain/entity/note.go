// Package entity defines the domain entities for the notes feature.
package entity

import "time"

// Note represents a study note captured in the app.
type Note struct {
	// ID is the generated unique identifier of the note.
	ID string `json:"id"`

	// Title is the note's title. Required on creation.
	Title string `json:"title"`

	// Content is the note body. Required on creation.
	Content string `json:"content"`

	// CreatedAt is the creation timestamp, serialized as RFC 3339.
	CreatedAt time.Time `json:"createdAt"`
}
