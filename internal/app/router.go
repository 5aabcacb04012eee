package app

import (
	"biotutor_backend/docs"
	"biotutor_backend/internal/config"
	"biotutor_backend/internal/middleware"
	"biotutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// The session guard enforces the configured protected path prefixes;
	// everything outside them passes through unchecked.
	router.Use(middleware.Guard(cfg))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
		api.GET("/profile", c.auth.GetProfile)

		lessons := api.Group("/lessons")
		{
			lessons.GET("", c.lesson.ListLessons)
			lessons.GET("/progress", c.progress.GetProgress)
			lessons.POST("/progress", c.progress.SaveProgress)
			lessons.GET("/:title", c.lesson.GetLesson)
			lessons.GET("/:title/insight", c.lesson.GetInsight)
			lessons.POST("/:title/quiz", c.lesson.SubmitQuiz)
		}

		api.POST("/chat", c.chat.Chat)
		api.GET("/models/:file", c.lesson.GetModel)
	}
}
