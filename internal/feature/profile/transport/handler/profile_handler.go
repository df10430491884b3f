// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arcade-K/eduscan-server/internal/api"
	"github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/profile/transport/http/dto"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	Get(ctx context.Context) (*entity.Profile, error)
	Update(ctx context.Context, username, status string) (*entity.Profile, error)
}

// ProfileHandler はプロフィール操作のHTTPリクエストを処理します。
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get はプロフィール取得APIエンドポイントを処理します。
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profile.Get(c.Request.Context())
	if err != nil {
		slog.Error("failed to get profile", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update はプロフィール更新APIエンドポイントを処理します。
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.profile.Update(c.Request.Context(), req.Username, req.Status)
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
