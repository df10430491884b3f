package docstore

import (
	authentity "github.com/Arcade-K/eduscan-server/internal/feature/auth/domain/entity"
	notesentity "github.com/Arcade-K/eduscan-server/internal/feature/notes/domain/entity"
	profileentity "github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
	questionsentity "github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
)

// Snapshot is the full in-memory state of the application, mirrored 1:1
// to the backing JSON file. Collections keep insertion order; order has
// no meaning beyond default display order.
type Snapshot struct {
	Users     []authentity.User          `json:"users"`
	Notes     []notesentity.Note         `json:"notes"`
	Questions []questionsentity.Question `json:"questions"`
	Profile   profileentity.Profile      `json:"profile"`
}

// DefaultSnapshot returns the shape used when no backing file exists yet.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Users:     []authentity.User{},
		Notes:     []notesentity.Note{},
		Questions: []questionsentity.Question{},
		Profile:   profileentity.Default(),
	}
}

// normalize replaces nil collections with empty ones so a snapshot loaded
// from a hand-edited file still serializes its collections as [].
func (s *Snapshot) normalize() {
	if s.Users == nil {
		s.Users = []authentity.User{}
	}
	if s.Notes == nil {
		s.Notes = []notesentity.Note{}
	}
	if s.Questions == nil {
		s.Questions = []questionsentity.Question{}
	}
	if s.Profile.Username == "" {
		s.Profile = profileentity.Default()
	}
}
