// Package handler はquestionsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arcade-K/eduscan-server/internal/api"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/domain/entity"
	"github.com/Arcade-K/eduscan-server/internal/feature/questions/transport/http/dto"
)

// QuestionsUsecase は質問操作のユースケースを定義します。
type QuestionsUsecase interface {
	List(ctx context.Context) ([]entity.Question, error)
	Get(ctx context.Context, id string) (*entity.Question, error)
	Create(ctx context.Context, title string) (*entity.Question, error)
	AddAnswer(ctx context.Context, questionID, content string) (*entity.Answer, error)
}

// QuestionsHandler は質問操作のHTTPリクエストを処理します。
type QuestionsHandler struct {
	questions QuestionsUsecase
}

// NewQuestionsHandler はQuestionsHandlerの新しいインスタンスを生成します。
func NewQuestionsHandler(questions QuestionsUsecase) *QuestionsHandler {
	return &QuestionsHandler{questions: questions}
}

// List は質問一覧APIエンドポイントを処理します。
func (h *QuestionsHandler) List(c *gin.Context) {
	questions, err := h.questions.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Get は質問詳細APIエンドポイントを処理します。未検出時は404を返却します。
func (h *QuestionsHandler) Get(c *gin.Context) {
	question, err := h.questions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "question not found"})
			return
		}
		slog.Error("failed to get question", "error", err, "question_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// Create は質問投稿APIエンドポイントを処理します。
func (h *QuestionsHandler) Create(c *gin.Context) {
	var req dto.QuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title required"})
		return
	}

	question, err := h.questions.Create(c.Request.Context(), req.Title)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// AddAnswer は回答追加APIエンドポイントを処理します。質問未検出時は404を返却します。
func (h *QuestionsHandler) AddAnswer(c *gin.Context) {
	var req dto.AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "content required"})
		return
	}

	answer, err := h.questions.AddAnswer(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "question not found"})
			return
		}
		slog.Error("failed to add answer", "error", err, "question_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, answer)
}
