package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "personal-task-management/internal/task/delivery/http"
)

// setupTaskDomain registers the task routes behind the session-token
// middleware. Generation is additionally rate limited.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
