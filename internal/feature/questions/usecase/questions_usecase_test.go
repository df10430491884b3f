package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
)

// mockQuestionRepo is a mock implementation of the QuestionRepository interface.
type mockQuestionRepo struct {
	ListFunc         func(ctx context.Context) ([]entity.Question, error)
	FindByIDFunc     func(ctx context.Context, id string) (*entity.Question, error)
	InsertFunc       func(ctx context.Context, question *entity.Question) error
	AppendAnswerFunc func(ctx context.Context, questionID string, answer *entity.Answer) error
}

func (m *mockQuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	return m.ListFunc(ctx)
}

func (m *mockQuestionRepo) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockQuestionRepo) Insert(ctx context.Context, question *entity.Question) error {
	return m.InsertFunc(ctx, question)
}

func (m *mockQuestionRepo) AppendAnswer(ctx context.Context, questionID string, answer *entity.Answer) error {
	return m.AppendAnswerFunc(ctx, questionID, answer)
}

func TestQuestionsUsecase_Create(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	var inserted *entity.Question
	repo := &mockQuestionRepo{
		InsertFunc: func(_ context.Context, q *entity.Question) error {
			inserted = q
			return nil
		},
	}

	u := NewQuestionsUsecase(repo)
	u.now = func() time.Time { return fixed }

	question, err := u.Create(context.Background(), "How does bcrypt work?")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := uuid.Parse(question.ID); err != nil {
		t.Errorf("ID is not a valid UUID: %q", question.ID)
	}
	if question.Title != "How does bcrypt work?" {
		t.Errorf("Title = %q", question.Title)
	}
	if !question.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", question.CreatedAt, fixed)
	}
	if question.Answers == nil || len(question.Answers) != 0 {
		t.Errorf("Answers should be an empty slice, got %v", question.Answers)
	}
	if inserted != question {
		t.Error("Insert did not receive the created question")
	}
}

func TestQuestionsUsecase_Create_RepoError(t *testing.T) {
	wantErr := errors.New("flush failed")
	repo := &mockQuestionRepo{
		InsertFunc: func(context.Context, *entity.Question) error { return wantErr },
	}

	u := NewQuestionsUsecase(repo)
	if _, err := u.Create(context.Background(), "t"); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestQuestionsUsecase_AddAnswer(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	var gotQuestionID string
	var appended *entity.Answer
	repo := &mockQuestionRepo{
		AppendAnswerFunc: func(_ context.Context, questionID string, a *entity.Answer) error {
			gotQuestionID = questionID
			appended = a
			return nil
		},
	}

	u := NewQuestionsUsecase(repo)
	u.now = func() time.Time { return fixed }

	answer, err := u.AddAnswer(context.Background(), "q1", "It is a key derivation function.")
	if err != nil {
		t.Fatalf("AddAnswer returned error: %v", err)
	}

	if gotQuestionID != "q1" {
		t.Errorf("questionID = %q, want %q", gotQuestionID, "q1")
	}
	if _, err := uuid.Parse(answer.ID); err != nil {
		t.Errorf("ID is not a valid UUID: %q", answer.ID)
	}
	if !answer.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", answer.CreatedAt, fixed)
	}
	if appended != answer {
		t.Error("AppendAnswer did not receive the created answer")
	}
}

func TestQuestionsUsecase_AddAnswer_NotFound(t *testing.T) {
	repo := &mockQuestionRepo{
		AppendAnswerFunc: func(context.Context, string, *entity.Answer) error {
			return domain.ErrQuestionNotFound
		},
	}

	u := NewQuestionsUsecase(repo)
	if _, err := u.AddAnswer(context.Background(), "missing", "c"); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("error = %v, want ErrQuestionNotFound", err)
	}
}

func TestQuestionsUsecase_Get_Passthrough(t *testing.T) {
	want := &entity.Question{ID: "q1", Title: "t"}
	repo := &mockQuestionRepo{
		FindByIDFunc: func(_ context.Context, id string) (*entity.Question, error) {
			if id != "q1" {
				t.Errorf("id = %q, want %q", id, "q1")
			}
			return want, nil
		},
	}

	u := NewQuestionsUsecase(repo)
	got, err := u.Get(context.Background(), "q1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != want {
		t.Error("Get did not return the repository result")
	}
}
