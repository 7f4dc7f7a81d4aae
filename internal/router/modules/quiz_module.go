package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edupath/internal/interface/http"
)

type QuizModule struct {
	Handler *handlers.QuizHandler
	Auth    gin.HandlerFunc
}

func NewQuizModule(h *handlers.QuizHandler, auth gin.HandlerFunc) *QuizModule {
	return &QuizModule{Handler: h, Auth: auth}
}

func (m *QuizModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/", m.Auth)
	g.GET("/skill-quiz", m.Handler.Show)
	g.POST("/skill-quiz", m.Handler.Start)
	g.POST("/skill-quiz-result", m.Handler.Result)
}
