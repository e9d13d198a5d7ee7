package app

import (
	"quiz_arena_backend/docs"
	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/middleware"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, s.tokens))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/user", c.auth.Me)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		// Open to any authenticated role.
		authGroup.GET("/quiz/start", c.quiz.Start)
		authGroup.POST("/quiz/submit", c.quiz.Submit)
		authGroup.GET("/quiz/history", c.quiz.History)
		authGroup.GET("/leaderboard", c.leaderboard.Index)

		// The whole catalog — reads included — sits behind the creator gate.
		creator := authGroup.Group("/")
		creator.Use(middleware.RoleMiddleware(model.Creator))
		{
			creator.GET("/categories", c.category.Index)
			creator.POST("/categories", c.category.Store)
			creator.GET("/categories/:id", c.category.Show)
			creator.PUT("/categories/:id", c.category.Update)
			creator.DELETE("/categories/:id", c.category.Destroy)

			creator.GET("/questions", c.question.Index)
			creator.POST("/questions", c.question.Store)
			creator.GET("/questions/:id", c.question.Show)
			creator.PUT("/questions/:id", c.question.Update)
			creator.DELETE("/questions/:id", c.question.Destroy)
		}
	}
}
