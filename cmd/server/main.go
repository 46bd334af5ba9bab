package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"mood_backend/internal/app/router"
	authadapters "mood_backend/internal/feature/auth/adapters"
	authhandler "mood_backend/internal/feature/auth/transport/handler"
	authusecase "mood_backend/internal/feature/auth/usecase"
	entryadapters "mood_backend/internal/feature/entries/adapters"
	entrieshandler "mood_backend/internal/feature/entries/transport/handler"
	entriesusecase "mood_backend/internal/feature/entries/usecase"
	"mood_backend/internal/feature/insights/adapters/gemini"
	insightshandler "mood_backend/internal/feature/insights/transport/handler"
	insightsusecase "mood_backend/internal/feature/insights/usecase"
	platformdb "mood_backend/internal/platform/db"
	jwtmw "mood_backend/internal/platform/jwt"
	platformredis "mood_backend/internal/platform/redis"
	"mood_backend/internal/platform/session"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	// db
	db := platformdb.OpenDB()
	if err := platformdb.Migrate(db); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	// Redis（リフレッシュセッション用、任意）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without refresh sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}
	var sessions authusecase.SessionRepository
	if rdb != nil {
		sessions = session.NewSessionRedis(rdb, "session")
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, accessTokenTTL)

	// Repository
	accountRepo := authadapters.NewAccountRepository(db)
	entryRepo := entryadapters.NewEntryRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(accountRepo, sessions, tokens)
	entriesUC := entriesusecase.NewEntriesUsecase(entryRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	entriesH := entrieshandler.NewEntryHandler(entriesUC)

	// Gemini（インサイト用、任意）
	var insightsH *insightshandler.InsightsHandler
	if analyzer, err := gemini.NewGeminiAnalyzer(context.Background()); err != nil {
		log.Println("[WARN] Gemini unavailable. Running without insights:", err)
	} else {
		insightsH = insightshandler.NewInsightsHandler(insightsusecase.NewInsightsUsecase(entriesUC, analyzer))
	}

	// ルータ生成
	r := router.NewRouter(authH, entriesH, insightsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
