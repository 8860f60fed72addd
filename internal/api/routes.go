package api

import (
	"vidhost/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the public pages and the admin area onto the router.
func SetupRoutes(
	router *gin.Engine,
	maxUploadSize int64,
	authService service.AuthService,
	videoService service.VideoService,
) {
	publicHandler := NewPublicHandler(videoService)
	adminHandler := NewAdminHandler(authService, videoService)

	router.Use(MaxBodySize(maxUploadSize))

	router.GET("/", publicHandler.Index)
	router.GET("/play/:id", publicHandler.Play)

	admin := router.Group("/admin")
	{
		admin.GET("", adminHandler.LoginPage)
		admin.POST("", adminHandler.Login)
		admin.GET("/logout", adminHandler.Logout)

		// Everything past login requires an active session.
		protected := admin.Group("", SessionMiddleware(authService))
		{
			protected.GET("/dashboard", adminHandler.Dashboard)
			protected.POST("/dashboard", adminHandler.Upload)
			protected.POST("/delete/:id", adminHandler.Delete)
		}
	}
}
