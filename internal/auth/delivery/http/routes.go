package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the auth routes. None of them require a session token:
// login and signup create sessions, and session/logout mirror the persisted
// state for unauthenticated clients too.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/session", h.Session)
	}
}
