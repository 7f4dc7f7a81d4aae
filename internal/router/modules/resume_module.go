package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
)

type ResumeModule struct {
	Handler *handlers.ResumeHandler
	Auth    gin.HandlerFunc
}

func NewResumeModule(h *handlers.ResumeHandler, auth gin.HandlerFunc) *ResumeModule {
	return &ResumeModule{Handler: h, Auth: auth}
}

func (m *ResumeModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/", m.Auth)
	g.GET("/resume-form", m.Handler.Form)
	g.POST("/resume-form", m.Handler.SubmitForm)
	g.GET("/resume-builder", m.Handler.Builder)
	g.GET("/download-resume", m.Handler.Download)
}
