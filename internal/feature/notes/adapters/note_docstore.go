// Package adapters はnotesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/Arcade-K/eduscan-server/internal/feature/notes/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/notes/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/notes/usecase"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

// noteDocstore はNoteRepositoryインターフェースのドキュメントストア実装です。
type noteDocstore struct {
	store *docstore.Store
}

// noteDocstoreがNoteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.NoteRepository = (*noteDocstore)(nil)

// NewNoteDocstore は指定されたストアでnoteDocstoreの新しいインスタンスを生成します。
func NewNoteDocstore(store *docstore.Store) *noteDocstore {
	return &noteDocstore{store: store}
}

// List は保存順のノート一覧のコピーを返します。
func (r *noteDocstore) List(_ context.Context) ([]entity.Note, error) {
	var notes []entity.Note
	r.store.View(func(snap *docstore.Snapshot) {
		notes = make([]entity.Note, len(snap.Notes))
		copy(notes, snap.Notes)
	})
	return notes, nil
}

// Insert はノートをストアに追加して永続化します。
func (r *noteDocstore) Insert(ctx context.Context, note *entity.Note) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		snap.Notes = append(snap.Notes, *note)
		return nil
	})
}

// Update は指定されたIDのノートのタイトルと本文を差し替えて永続化します。
// 作成日時と保存位置は維持されます。
func (r *noteDocstore) Update(ctx context.Context, id, title, content string) (*entity.Note, error) {
	var updated *entity.Note
	err := r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		for i := range snap.Notes {
			if snap.Notes[i].ID == id {
				snap.Notes[i].Title = title
				snap.Notes[i].Content = content
				n := snap.Notes[i]
				updated = &n
				return nil
			}
		}
		return domain.ErrNoteNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete は指定されたIDのノートを削除して永続化します。
func (r *noteDocstore) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		for i := range snap.Notes {
			if snap.Notes[i].ID == id {
				snap.Notes = append(snap.Notes[:i], snap.Notes[i+1:]...)
				return nil
			}
		}
		return domain.ErrNoteNotFound
	})
}
