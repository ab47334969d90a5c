package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All task
// routes require a session token; generation is additionally rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/stats", mw.Auth(), h.Stats)
		tasks.GET("/category/:category", mw.Auth(), h.ByCategory)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.POST("/generate", mw.Auth(), mw.RateLimit(), h.Generate)
		tasks.POST("/generate/commit", mw.Auth(), h.Commit)
	}
}
