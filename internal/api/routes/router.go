package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/bootcamp-go/docs"
	"github.com/linskybing/bootcamp-go/internal/api/handlers"
	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services) *handlers.Handlers {
	h := handlers.New(svc, r)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(config.APIPrefix)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/token", h.User.Login)
		authRoutes.POST("/logout", middleware.JWTAuthMiddleware(), h.User.Logout)
	}

	// Public submission endpoints.
	SubmissionRoutes(api, h)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/users/me", h.User.Me)
	}

	admin := api.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), authMiddleware.Admin())
	{
		ModerationRoutes(admin, h)

		users := admin.Group("/users")
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Create)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		dashboard := admin.Group("/dashboard")
		{
			dashboard.GET("/activities", h.Dashboard.Activities)
			dashboard.GET("/stats", h.Dashboard.Stats)
		}
	}
	return h
}
