// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arcade-K/eduscan-server/internal/api"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/transport/http/dto"
	jwtmw "github.com/Arcade-K/eduscan-server/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// Register は新規ユーザーを登録し、ログイン済みトークンとユーザーを返します。
	Register(ctx context.Context, email, username, password string) (string, *entity.User, error)
	// DeleteAccount は指定されたIDのユーザーを削除します。
	DeleteAccount(ctx context.Context, userID string) error
}

// LoginLimiter はログイン試行のレート制限を抽象化します。
// 実装はplatform/throttle（Redisまたはインプロセス）が提供します。
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth    AuthUsecase
	limiter LoginLimiter
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAuthHandler(auth AuthUsecase, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - レート制限超過時は429を返却
// - 認証失敗時は401を返却（メール未検出とパスワード不一致を区別しない）
// - 認証成功時はJWTトークンとユーザーサマリー付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password required"})
		return
	}

	ok, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
	if err != nil {
		// スロットルバックエンド障害時はフェイルオープン（ログインを止めない）
		slog.Warn("login throttle unavailable", "error", err, "remote_addr", c.ClientIP())
	} else if !ok {
		slog.Warn("login throttled", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many attempts"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Token: token,
		User:  api.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はJWTトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email, username and password required"})
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			slog.Warn("register failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already registered"})
			return
		}
		slog.Error("register error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.LoginResponse{
		Token: token,
		User:  api.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}

// Verify はトークン検証APIエンドポイントを処理します。
// AuthRequiredミドルウェアが設定したクレームをそのまま返却します。
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, api.VerifyResponse{
		User: api.VerifiedUser{
			ID:    c.GetString(jwtmw.ContextUserID),
			Email: c.GetString(jwtmw.ContextEmail),
		},
	})
}

// DeleteAccount は認証済みユーザー自身のアカウント削除を処理します。
// - ユーザー未検出時は404を返却
// - 成功時は204を返却
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("account deletion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("account deleted", "user_id", userID)
	c.Status(http.StatusNoContent)
}
