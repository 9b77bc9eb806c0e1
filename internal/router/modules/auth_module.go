package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/internal/container"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// AuthModule wires the session endpoints.
// Public: POST /api/auth/login, POST /api/auth/refresh
// POST /api/auth/logout resolves the subject to drop its session.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuth(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", m.Handler.Login)
	a.POST("/refresh", m.Handler.Refresh)
	a.POST("/logout", middleware.Identity(container.GetRedis(), m.JWT), m.Handler.Logout)
}
