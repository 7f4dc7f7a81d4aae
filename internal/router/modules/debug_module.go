package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
	"github.com/oksasatya/edupath/internal/interface/middleware"
)

// DebugModule exposes health, expvar and Prometheus endpoints.
type DebugModule struct {
	Health   *handlers.HealthHandler
	Gatherer prometheus.Gatherer
	Limiter  middleware.Limiter
	Enabled  bool
}

func NewDebugModule(health *handlers.HealthHandler, gatherer prometheus.Gatherer, limiter middleware.Limiter, enabled bool) *DebugModule {
	return &DebugModule{Health: health, Gatherer: gatherer, Limiter: limiter, Enabled: enabled}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Health.Healthz)
	if !m.Enabled {
		return
	}
	// scrapers on private networks are not limited
	rl := middleware.RateLimit(m.Limiter, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	if m.Gatherer != nil {
		rg.GET("/metrics", rl, gin.WrapH(promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})))
	}
}
