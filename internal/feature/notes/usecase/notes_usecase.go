// Package usecase はnotesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Arcade-K/eduscan-server/internal/feature/notes/domain/entity"
)

// NoteRepository はノートエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type NoteRepository interface {
	// List は保存順のノート一覧を返します。
	List(ctx context.Context) ([]entity.Note, error)

	// Insert は新しいノートをストアに追加します。
	Insert(ctx context.Context, note *entity.Note) error

	// Update は指定されたIDのノートのタイトルと本文を差し替えます。
	// ノートが存在しない場合、domain.ErrNoteNotFoundを返します。
	Update(ctx context.Context, id, title, content string) (*entity.Note, error)

	// Delete は指定されたIDのノートを削除します。
	// ノートが存在しない場合、domain.ErrNoteNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// notesUsecase はノート管理のビジネスロジックを実装します。
type notesUsecase struct {
	notes NoteRepository
	now   func() time.Time
}

// NewNotesUsecase はnotesUsecaseの新しいインスタンスを生成します。
func NewNotesUsecase(notes NoteRepository) *notesUsecase {
	return &notesUsecase{notes: notes, now: time.Now}
}

// List は保存順のノート一覧を返します。
func (u *notesUsecase) List(ctx context.Context) ([]entity.Note, error) {
	return u.notes.List(ctx)
}

// Create はIDと作成日時を付与した新しいノートを永続化して返します。
func (u *notesUsecase) Create(ctx context.Context, title, content string) (*entity.Note, error) {
	note := &entity.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: u.now().UTC(),
	}
	if err := u.notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update は既存ノートのタイトルと本文を差し替えます。作成日時は維持されます。
func (u *notesUsecase) Update(ctx context.Context, id, title, content string) (*entity.Note, error) {
	return u.notes.Update(ctx, id, title, content)
}

// Delete は指定されたIDのノートを削除します。
func (u *notesUsecase) Delete(ctx context.Context, id string) error {
	return u.notes.Delete(ctx, id)
}
