package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Arcade-K/eduscan-server/internal/app/di"
	"github.com/Arcade-K/eduscan-server/internal/app/router"
	"github.com/Arcade-K/eduscan-server/internal/config"
	authadapters "github.com/Arcade-K/eduscan-server/internal/feature/auth/adapters"
	authhandler "github.com/Arcade-K/eduscan-server/internal/feature/auth/transport/handler"
	authusecase "github.com/Arcade-K/eduscan-server/internal/feature/auth/usecase"
	notesadapters "github.com/Arcade-K/eduscan-server/internal/feature/notes/adapters"
	noteshandler "github.com/Arcade-K/eduscan-server/internal/feature/notes/transport/handler"
	notesusecase "github.com/Arcade-K/eduscan-server/internal/feature/notes/usecase"
	profileadapters "github.com/Arcade-K/eduscan-server/internal/feature/profile/adapters"
	profilehandler "github.com/Arcade-K/eduscan-server/internal/feature/profile/transport/handler"
	profileusecase "github.com/Arcade-K/eduscan-server/internal/feature/profile/usecase"
	questionsadapters "github.com/Arcade-K/eduscan-server/internal/feature/questions/adapters"
	questionshandler "github.com/Arcade-K/eduscan-server/internal/feature/questions/transport/handler"
	questionsusecase "github.com/Arcade-K/eduscan-server/internal/feature/questions/usecase"
	"github.com/Arcade-K/eduscan-server/internal/platform/docstore"
	jwtmw "github.com/Arcade-K/eduscan-server/internal/platform/jwt"
	platformredis "github.com/Arcade-K/eduscan-server/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ドキュメントストア
	store, err := docstore.Open(cfg.DataFile)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if tmp, err := platformredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to in-process login throttle.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserDocstore(store)
	noteRepo := notesadapters.NewNoteDocstore(store)
	questionRepo := questionsadapters.NewQuestionDocstore(store)
	profileRepo := profileadapters.NewProfileDocstore(store)

	// JWT
	tokens := jwtmw.New(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, cfg.BcryptCost)
	notesUC := notesusecase.NewNotesUsecase(noteRepo)
	questionsUC := questionsusecase.NewQuestionsUsecase(questionRepo)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, di.NewLoginLimiter(rdb, cfg.Throttle))
	notesH := noteshandler.NewNotesHandler(notesUC)
	questionsH := questionshandler.NewQuestionsHandler(questionsUC)
	profileH := profilehandler.NewProfileHandler(profileUC)

	// ルータ生成
	router := router.NewRouter(authH, notesH, questionsH, profileH, tokens)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
