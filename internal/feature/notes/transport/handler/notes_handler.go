// Package handler はnotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arcade-K/eduscan-server/internal/api"
	"github.com/Arcade-K/eduscan-server/internal/feature/notes/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/notes/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/notes/transport/http/dto"
)

// NotesUsecase はノート操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type NotesUsecase interface {
	List(ctx context.Context) ([]entity.Note, error)
	Create(ctx context.Context, title, content string) (*entity.Note, error)
	Update(ctx context.Context, id, title, content string) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
}

// NotesHandler はノート操作のHTTPリクエストを処理します。
type NotesHandler struct {
	notes NotesUsecase
}

// NewNotesHandler はNotesHandlerの新しいインスタンスを生成します。
func NewNotesHandler(notes NotesUsecase) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// List はノート一覧APIエンドポイントを処理します。保存順の配列を返却します。
func (h *NotesHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list notes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// Create はノート作成APIエンドポイントを処理します。
// - タイトルまたは本文が欠けている場合は400を返却
// - 成功時は生成されたIDと作成日時付きで201を返却
func (h *NotesHandler) Create(c *gin.Context) {
	var req dto.NoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title and content required"})
		return
	}

	note, err := h.notes.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		slog.Error("failed to create note", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// Update はノート更新APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ノート未検出時は404を返却
// - 成功時は更新後のノート付きで200を返却
func (h *NotesHandler) Update(c *gin.Context) {
	var req dto.NoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title and content required"})
		return
	}

	note, err := h.notes.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "note not found"})
			return
		}
		slog.Error("failed to update note", "error", err, "note_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// Delete はノート削除APIエンドポイントを処理します。
// - ノート未検出時は404を返却
// - 成功時は204を返却
func (h *NotesHandler) Delete(c *gin.Context) {
	if err := h.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "note not found"})
			return
		}
		slog.Error("failed to delete note", "error", err, "note_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
