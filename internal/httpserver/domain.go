package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
	noteHTTP "taskie/internal/note/delivery/http"
	noteRepo "taskie/internal/note/repository/sqlite"
	noteUC "taskie/internal/note/usecase"
	"taskie/internal/user"
	userHTTP "taskie/internal/user/delivery/http"
)

// setupUserDomain registers /api/register, /api/login and /api/user/profile.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, uc user.UseCase, mw middleware.Middleware) {
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

// setupNoteDomain registers /api/note and /api/note/complete.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. Repository
	repo := noteRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := noteUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := noteHTTP.New(srv.l, uc)

	// 4. Routes
	noteHTTP.RegisterRoutes(api.Group("/note"), h, mw)

	srv.l.Infof(ctx, "Note domain registered")
}
