// Command seed replaces the document store contents with demo data.
package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Arcade-K/eduscan-server/internal/config"
	authentity "github.com/Arcade-K/eduscan-server/internal/feature/auth/domain/entity"
	notesentity "github.com/Arcade-K/eduscan-server/internal/feature/notes/domain/entity"
	profileentity "github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
	questionsentity "github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := docstore.Open(cfg.DataFile)
	if err != nil {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BcryptCost)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now().UTC()
	err = store.Update(context.Background(), func(snap *docstore.Snapshot) error {
		snap.Profile = profileentity.Profile{Username: "alandrelisboa90", Status: "Ambitious"}
		snap.Users = []authentity.User{
			{ID: "u1", Email: "demo@example.com", Username: "demo", PasswordHash: string(hash)},
		}
		snap.Questions = []questionsentity.Question{
			{ID: "q1", Title: "What is photosynthesis?", CreatedAt: now, Answers: []questionsentity.Answer{}},
			{ID: "q2", Title: "Solve x^2 - 5x + 6 = 0", CreatedAt: now, Answers: []questionsentity.Answer{}},
		}
		snap.Notes = []notesentity.Note{
			{ID: "n1", Title: "Chapter 3 Summary", Content: "Key takeaways...", CreatedAt: now},
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete:", store.Path())
}
