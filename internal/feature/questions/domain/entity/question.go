// Package entity defines the domain entities for the questions feature.
package entity

import "time"

// Question represents a question posted to the community feed.
type Question struct {
	// ID is the generated unique identifier of the question.
	ID string `json:"id"`

	// Title is the question text.
	Title string `json:"title"`

	// CreatedAt is the creation timestamp, serialized as RFC 3339.
	CreatedAt time.Time `json:"createdAt"`

	// Answers holds the community answers in insertion order.
	Answers []Answer `json:"answers"`
}

// Answer represents a single answer attached to a question.
type Answer struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
