package api

import (
	"github.com/gin-gonic/gin"

	"github.com/aysenurmengi/ai-languageExercises/internal/config"
	"github.com/aysenurmengi/ai-languageExercises/pkg/ratelimiter"
)

// SetupRouter 配置和返回一个 Gin 引擎实例。
func SetupRouter(h *Handler, cfg *config.AppConfig) *gin.Engine {
	// 使用默认中间件 (logger, recovery) 创建一个 Gin 引擎。
	r := gin.Default()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadMB << 20

	r.Use(CORS(cfg.Server.AllowedOrigins))

	r.GET("/test", h.Health)

	apiGroup := r.Group("/api")
	if cfg.Middleware.RateLimiter.Enabled {
		limiter := ratelimiter.NewTokenBucket(
			cfg.Middleware.RateLimiter.Rate,
			cfg.Middleware.RateLimiter.Capacity,
		)
		apiGroup.Use(RateLimit(limiter))
	}
	{
		apiGroup.POST("/process-document", h.ProcessDocument)
		apiGroup.POST("/summarize", h.Summarize)
		apiGroup.POST("/ask-question", h.AskQuestion)
		apiGroup.POST("/generate-image", h.GenerateImage)
		apiGroup.POST("/generate-questions", h.GenerateQuestions)
	}

	return r
}
