package main

import (
	"log"
	"os"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	infradb "todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/platform/mail"
	infraredis "todo_backend/internal/platform/redis"
)

const (
	// authRateLimit は認証エンドポイントのIPごとの回数上限です（ウィンドウあたり）。
	authRateLimit = 10
	// authRateWindow はレート制限の固定ウィンドウ幅です。
	authRateWindow = time.Minute
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache and with in-memory rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT設定（署名鍵は起動時に一度だけ読み込む）
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Using an insecure development default.")
		jwtSecret = "dev-secret"
	}
	jwtExpiration := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			jwtExpiration = d
		} else {
			log.Printf("[WARN] invalid JWT_EXPIRATION %q, using default %v", v, jwtExpiration)
		}
	}

	// リセットリンクの基点URL（フロントエンドのオリジン）
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5173"
	}
	corsOrigins := []string{baseURL}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	todoRepo := di.NewTodoRepository(rdb, db, 0)

	// Usecase
	jwtGen := jwtmw.NewGenerator(jwtSecret, jwtExpiration)
	mailer := mail.NewResetMailer(mail.LoadConfig())
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen, mailer, baseURL)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	// レートリミッタ（Redisがあれば共有ウィンドウ、なければインメモリ）
	limiter := di.NewAuthLimiter(rdb, authRateLimit, authRateWindow)

	// ルータ生成
	router := router.NewRouter(authH, todoH, jwtSecret, limiter, corsOrigins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
