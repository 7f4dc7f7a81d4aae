package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
)

// ProfileModule serves the submission form and its analysis.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Auth    gin.HandlerFunc
}

func NewProfileModule(h *handlers.ProfileHandler, auth gin.HandlerFunc) *ProfileModule {
	return &ProfileModule{Handler: h, Auth: auth}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/", m.Auth)
	g.GET("/", m.Handler.Latest)
	g.POST("/", m.Handler.Submit)
}
