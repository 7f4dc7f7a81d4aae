package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/response"
)

// ResumeBuilder produces résumé texts and the downloadable PDF.
type ResumeBuilder interface {
	PrefillForm(ctx context.Context, userID int64) (application.ResumeForm, error)
	SubmitForm(ctx context.Context, userID int64, form application.ResumeForm) (*application.GeneratedResume, error)
	Build(ctx context.Context, userID int64, template string) (*application.GeneratedResume, error)
	Download(ctx context.Context, userID int64) ([]byte, error)
}

type ResumeHandler struct {
	Service ResumeBuilder
	Logger  *logrus.Logger
}

func NewResumeHandler(svc ResumeBuilder, logger *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{Service: svc, Logger: logger}
}

// Form GET /api/resume-form
func (h *ResumeHandler) Form(c *gin.Context) {
	form, err := h.Service.PrefillForm(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, form, "")
}

// SubmitForm POST /api/resume-form
func (h *ResumeHandler) SubmitForm(c *gin.Context) {
	var form application.ResumeForm
	if err := c.ShouldBind(&form); err != nil {
		bindError(c, err)
		return
	}
	out, err := h.Service.SubmitForm(c.Request.Context(), currentUserID(c), form)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, out, "")
}

// Builder GET /api/resume-builder?template=classic|modern|compact|creative
func (h *ResumeHandler) Builder(c *gin.Context) {
	out, err := h.Service.Build(c.Request.Context(), currentUserID(c), c.DefaultQuery("template", application.DefaultTemplate))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, out, "")
}

// Download GET /api/download-resume
func (h *ResumeHandler) Download(c *gin.Context) {
	doc, err := h.Service.Download(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
