package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/platform/ratelimit"
)

func NewRouter(authHandler *authhandler.AuthHandler, todos *todohandler.TodoHandler,
	jwtSecret string, authLimiter ratelimit.Limiter, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// SPAフロントエンドからの呼び出しを許可
	r.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証エンドポイント群
	auth := r.Group("/auth")
	{
		// 新規ユーザー登録
		auth.POST("/register", authHandler.Register)
		// ブルートフォース対策として login / forgot-password はIPごとにレート制限
		limited := ratelimit.Middleware(authLimiter)
		// ログイン（JWT 発行）
		auth.POST("/login", limited, authHandler.Login)
		// パスワードリセット要求
		auth.POST("/forgot-password", limited, authHandler.ForgotPassword)
		// パスワード再設定
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := r.Group("/todos")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.GET("", todos.List)
		protected.POST("", todos.Create)
		protected.PUT("/:id", todos.Update)
		protected.DELETE("/:id", todos.Delete)
	}

	return r
}
