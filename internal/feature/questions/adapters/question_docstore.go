// Package adapters はquestionsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/usecase"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

// questionDocstore はQuestionRepositoryインターフェースのドキュメントストア実装です。
type questionDocstore struct {
	store *docstore.Store
}

var _ usecase.QuestionRepository = (*questionDocstore)(nil)

// NewQuestionDocstore は指定されたストアでquestionDocstoreの新しいインスタンスを生成します。
func NewQuestionDocstore(store *docstore.Store) *questionDocstore {
	return &questionDocstore{store: store}
}

// List は保存順の質問一覧のコピーを返します。
func (r *questionDocstore) List(_ context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	r.store.View(func(snap *docstore.Snapshot) {
		questions = make([]entity.Question, len(snap.Questions))
		copy(questions, snap.Questions)
	})
	return questions, nil
}

// FindByID は指定されたIDの質問を取得します。
func (r *questionDocstore) FindByID(_ context.Context, id string) (*entity.Question, error) {
	var found *entity.Question
	r.store.View(func(snap *docstore.Snapshot) {
		for i := range snap.Questions {
			if snap.Questions[i].ID == id {
				q := snap.Questions[i]
				found = &q
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrQuestionNotFound
	}
	return found, nil
}

// Insert は質問をストアに追加して永続化します。
func (r *questionDocstore) Insert(ctx context.Context, question *entity.Question) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		snap.Questions = append(snap.Questions, *question)
		return nil
	})
}

// AppendAnswer は指定された質問に回答を追加して永続化します。
func (r *questionDocstore) AppendAnswer(ctx context.Context, questionID string, answer *entity.Answer) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		for i := range snap.Questions {
			if snap.Questions[i].ID == questionID {
				snap.Questions[i].Answers = append(snap.Questions[i].Answers, *answer)
				return nil
			}
		}
		return domain.ErrQuestionNotFound
	})
}
