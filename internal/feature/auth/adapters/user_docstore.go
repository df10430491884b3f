// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/usecase"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

// userDocstore はUserRepositoryインターフェースのドキュメントストア実装です。
// スナップショットのusersコレクションを操作します。
type userDocstore struct {
	store *docstore.Store
}

// userDocstoreがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userDocstore)(nil)

// NewUserDocstore は指定されたストアでuserDocstoreの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserDocstore(store *docstore.Store) *userDocstore {
	return &userDocstore{store: store}
}

// Create はユーザーをストアに追加して永続化します。
// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailTakenを返します。
func (r *userDocstore) Create(ctx context.Context, u *entity.User) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		for _, existing := range snap.Users {
			if existing.Email == u.Email {
				return domain.ErrEmailTaken
			}
		}
		snap.Users = append(snap.Users, *u)
		return nil
	})
}

// FindByEmail はメールアドレス完全一致でユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userDocstore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	r.store.View(func(snap *docstore.Snapshot) {
		for i := range snap.Users {
			if snap.Users[i].Email == email {
				u := snap.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	return found, nil
}

// Delete は指定されたIDのユーザーを削除して永続化します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userDocstore) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				snap.Users = append(snap.Users[:i], snap.Users[i+1:]...)
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
}
