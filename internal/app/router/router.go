package router

import (
	"github.com/gin-gonic/gin"

	authhandler "mood_backend/internal/feature/auth/transport/handler"
	entrieshandler "mood_backend/internal/feature/entries/transport/handler"
	insightshandler "mood_backend/internal/feature/insights/transport/handler"
	"mood_backend/internal/platform/http/handler"
	jwtmw "mood_backend/internal/platform/jwt"
)

// NewRouter assembles the route table. insights may be nil when no Gemini
// credentials are configured; its routes are simply not registered then.
func NewRouter(auth *authhandler.AuthHandler, entries *entrieshandler.EntryHandler,
	insights *insightshandler.InsightsHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規アカウント登録
	r.POST("/signup", auth.Signup)
	// ログイン（トークンペア発行）
	r.POST("/login", auth.Login)
	// リフレッシュトークンのローテーション
	r.POST("/refresh", auth.Refresh)
	// リフレッシュセッションの失効
	r.POST("/logout", auth.Logout)

	// 認証必須のルート
	// リクエストヘッダーに JWT が必要になる
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/entries", entries.Append)
		protected.GET("/entries", entries.List)
		if insights != nil {
			protected.GET("/insights", insights.Summarize)
		}
	}

	return r
}
