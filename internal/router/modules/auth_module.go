package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
	"github.com/oksasatya/edupath/internal/interface/middleware"
)

// AuthModule serves account routes.
// Public: POST /api/register, POST /api/login
// Protected: GET /api/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
	Limiter middleware.Limiter
}

func NewAuthModule(h *handlers.AuthHandler, auth gin.HandlerFunc, limiter middleware.Limiter) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth, Limiter: limiter}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Limiter, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Limiter, 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	rg.GET("/logout", m.Auth, m.Handler.Logout)
}
