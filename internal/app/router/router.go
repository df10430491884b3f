package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/Arcade-K/eduscan-server/internal/feature/auth/transport/handler"
	noteshandler "github.com/Arcade-K/eduscan-server/internal/feature/notes/transport/handler"
	profilehandler "github.com/Arcade-K/eduscan-server/internal/feature/profile/transport/handler"
	questionshandler "github.com/Arcade-K/eduscan-server/internal/feature/questions/transport/handler"
	"github.com/Arcade-K/eduscan-server/internal/platform/http/handler"
	jwtmw "github.com/Arcade-K/eduscan-server/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, notes *noteshandler.NotesHandler,
	questions *questionshandler.QuestionsHandler, profile *profilehandler.ProfileHandler,
	verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// Expo webクライアント向けに全オリジンを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/health", handler.Health(time.Now()))
	// 新規ユーザー登録
	r.POST("/auth/register", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", auth.Login)
	// ノートの閲覧・投稿
	r.GET("/notes", notes.List)
	r.POST("/notes", notes.Create)
	// 質問の閲覧
	r.GET("/questions", questions.List)
	r.GET("/questions/:id", questions.Get)
	// プロフィールの閲覧
	r.GET("/profile", profile.Get)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	authed := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	authed.Use(jwtmw.AuthRequired(verifier))
	{
		authed.GET("/auth/verify", auth.Verify)
		authed.DELETE("/auth/account", auth.DeleteAccount)
		authed.PUT("/notes/:id", notes.Update)
		authed.DELETE("/notes/:id", notes.Delete)
		authed.POST("/questions", questions.Create)
		authed.POST("/questions/:id/answers", questions.AddAnswer)
		authed.PUT("/profile", profile.Update)
	}

	return r
}
