package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()
	store, err := docstore.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store
}

func TestQuestionDocstore_InsertAndList(t *testing.T) {
	repo := NewQuestionDocstore(newTestStore(t))
	ctx := context.Background()

	q1 := &entity.Question{ID: "q1", Title: "first", CreatedAt: time.Now().UTC(), Answers: []entity.Answer{}}
	q2 := &entity.Question{ID: "q2", Title: "second", CreatedAt: time.Now().UTC(), Answers: []entity.Answer{}}
	if err := repo.Insert(ctx, q1); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := repo.Insert(ctx, q2); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	questions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	// Insertion order is preserved.
	if questions[0].ID != "q1" || questions[1].ID != "q2" {
		t.Errorf("order = [%s %s], want [q1 q2]", questions[0].ID, questions[1].ID)
	}
}

func TestQuestionDocstore_FindByID(t *testing.T) {
	repo := NewQuestionDocstore(newTestStore(t))
	ctx := context.Background()

	if err := repo.Insert(ctx, &entity.Question{ID: "q1", Title: "t"}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, "q1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Title != "t" {
		t.Errorf("Title = %q, want %q", got.Title, "t")
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("error = %v, want ErrQuestionNotFound", err)
	}
}

func TestQuestionDocstore_AppendAnswer(t *testing.T) {
	store := newTestStore(t)
	repo := NewQuestionDocstore(store)
	ctx := context.Background()

	if err := repo.Insert(ctx, &entity.Question{ID: "q1", Title: "t", Answers: []entity.Answer{}}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	answer := &entity.Answer{ID: "a1", Content: "first answer", CreatedAt: time.Now().UTC()}
	if err := repo.AppendAnswer(ctx, "q1", answer); err != nil {
		t.Fatalf("AppendAnswer returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, "q1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if len(got.Answers) != 1 || got.Answers[0].ID != "a1" {
		t.Errorf("Answers = %v, want one answer with ID a1", got.Answers)
	}

	// The answer survives a reload from disk.
	reloaded, err := docstore.Open(store.Path())
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	got2, err := NewQuestionDocstore(reloaded).FindByID(ctx, "q1")
	if err != nil {
		t.Fatalf("FindByID after reload returned error: %v", err)
	}
	if len(got2.Answers) != 1 {
		t.Errorf("len(Answers) after reload = %d, want 1", len(got2.Answers))
	}
}

func TestQuestionDocstore_AppendAnswer_NotFound(t *testing.T) {
	repo := NewQuestionDocstore(newTestStore(t))

	err := repo.AppendAnswer(context.Background(), "missing", &entity.Answer{ID: "a1"})
	if !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("error = %v, want ErrQuestionNotFound", err)
	}
}
