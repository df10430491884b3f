// Package adapters はprofileフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/profile/usecase"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
)

// profileDocstore はProfileRepositoryインターフェースのドキュメントストア実装です。
type profileDocstore struct {
	store *docstore.Store
}

var _ usecase.ProfileRepository = (*profileDocstore)(nil)

// NewProfileDocstore は指定されたストアでprofileDocstoreの新しいインスタンスを生成します。
func NewProfileDocstore(store *docstore.Store) *profileDocstore {
	return &profileDocstore{store: store}
}

// Get は保存済みプロフィールのコピーを返します。
func (r *profileDocstore) Get(_ context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	r.store.View(func(snap *docstore.Snapshot) {
		profile = snap.Profile
	})
	return &profile, nil
}

// Save はプロフィールを上書きして永続化します。
func (r *profileDocstore) Save(ctx context.Context, profile *entity.Profile) error {
	return r.store.Update(ctx, func(snap *docstore.Snapshot) error {
		snap.Profile = *profile
		return nil
	})
}
