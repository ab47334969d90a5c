package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "personal-task-management/internal/auth/delivery/http"
)

// setupAuthDomain registers the auth routes. Login, signup, logout and
// session are public; they establish and report the session other routes
// are guarded by.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) error {
	authHTTP.RegisterRoutes(api, srv.authHandler)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
