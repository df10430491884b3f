// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
)

// ProfileRepository はプロフィールの永続化層を抽象化します。
type ProfileRepository interface {
	// Get は保存済みプロフィールを返します。未設定時はデフォルト値を返します。
	Get(ctx context.Context) (*entity.Profile, error)

	// Save はプロフィールを上書き保存します。
	Save(ctx context.Context, profile *entity.Profile) error
}

type profileUsecase struct {
	profiles ProfileRepository
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(profiles ProfileRepository) *profileUsecase {
	return &profileUsecase{profiles: profiles}
}

// Get は現在のプロフィールを返します。
func (u *profileUsecase) Get(ctx context.Context) (*entity.Profile, error) {
	return u.profiles.Get(ctx)
}

// Update はプロフィールを全置換して保存済みの値を返します。
// 空のusernameはデフォルトのままにします。
func (u *profileUsecase) Update(ctx context.Context, username, status string) (*entity.Profile, error) {
	profile := &entity.Profile{Username: username, Status: status}
	if profile.Username == "" {
		profile.Username = entity.Default().Username
	}
	if err := u.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
