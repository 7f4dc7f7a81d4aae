package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
	"github.com/oksasatya/edupath/internal/interface/middleware"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Auth    gin.HandlerFunc
	Limiter middleware.Limiter
}

func NewDashboardModule(h *handlers.DashboardHandler, auth gin.HandlerFunc, limiter middleware.Limiter) *DashboardModule {
	return &DashboardModule{Handler: h, Auth: auth, Limiter: limiter}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/", m.Auth)
	g.Use(middleware.RateLimit(m.Limiter, 120, time.Minute, middleware.KeyByUserID(), nil))
	g.GET("/dashboard", m.Handler.Dashboard)
	g.GET("/history", m.Handler.History)
	g.GET("/history/search", m.Handler.Search)
}
