// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証します。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストアに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに完全一致（大文字小文字区別）するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	bcryptCost   int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// bcryptCostが0以下の場合はbcrypt.DefaultCostを使用します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, bcryptCost int) *authUsecase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		bcryptCost:   bcryptCost,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
// メール未検出とパスワード不一致は区別せず、どちらもdomain.ErrInvalidCredentialsを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、ログイン済みトークンを返します。
// メールアドレスが既に使用されている場合、domain.ErrEmailTakenを返します。
func (u *authUsecase) Register(ctx context.Context, email, username, password string) (string, *entity.User, error) {
	if err := validatePassword(password); err != nil {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// DeleteAccount は指定されたIDのユーザーを削除します。
func (u *authUsecase) DeleteAccount(ctx context.Context, userID string) error {
	return u.users.Delete(ctx, userID)
}
