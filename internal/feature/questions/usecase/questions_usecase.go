// Package usecase はquestionsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
)

// QuestionRepository は質問エンティティの永続化層を抽象化します。
type QuestionRepository interface {
	// List は保存順の質問一覧を返します。
	List(ctx context.Context) ([]entity.Question, error)

	// FindByID は指定されたIDの質問を取得します。
	// 質問が存在しない場合、domain.ErrQuestionNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Question, error)

	// Insert は新しい質問をストアに追加します。
	Insert(ctx context.Context, question *entity.Question) error

	// AppendAnswer は指定された質問に回答を追加します。
	// 質問が存在しない場合、domain.ErrQuestionNotFoundを返します。
	AppendAnswer(ctx context.Context, questionID string, answer *entity.Answer) error
}

type questionsUsecase struct {
	questions QuestionRepository
	now       func() time.Time
}

// NewQuestionsUsecase はquestionsUsecaseの新しいインスタンスを生成します。
func NewQuestionsUsecase(questions QuestionRepository) *questionsUsecase {
	return &questionsUsecase{questions: questions, now: time.Now}
}

// List は保存順の質問一覧を返します。
func (u *questionsUsecase) List(ctx context.Context) ([]entity.Question, error) {
	return u.questions.List(ctx)
}

// Get は指定されたIDの質問を返します。
func (u *questionsUsecase) Get(ctx context.Context, id string) (*entity.Question, error) {
	return u.questions.FindByID(ctx, id)
}

// Create はIDと作成日時を付与した新しい質問を永続化して返します。
func (u *questionsUsecase) Create(ctx context.Context, title string) (*entity.Question, error) {
	question := &entity.Question{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: u.now().UTC(),
		Answers:   []entity.Answer{},
	}
	if err := u.questions.Insert(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// AddAnswer は指定された質問に新しい回答を追加して返します。
func (u *questionsUsecase) AddAnswer(ctx context.Context, questionID, content string) (*entity.Answer, error) {
	answer := &entity.Answer{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: u.now().UTC(),
	}
	if err := u.questions.AppendAnswer(ctx, questionID, answer); err != nil {
		return nil, err
	}
	return answer, nil
}
