package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/response"
)

// ProfileSubmitter runs the submission workflow.
type ProfileSubmitter interface {
	Submit(ctx context.Context, userID int64, in application.SubmitInput) (*application.Submission, error)
	Latest(ctx context.Context, userID int64) (*application.Submission, error)
}

type ProfileHandler struct {
	Service        ProfileSubmitter
	MaxUploadBytes int64
	Logger         *logrus.Logger
}

func NewProfileHandler(svc ProfileSubmitter, maxUploadBytes int64, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Service: svc, MaxUploadBytes: maxUploadBytes, Logger: logger}
}

type submitRequest struct {
	Name      string `form:"name" json:"name"`
	CGPA      string `form:"cgpa" json:"cgpa"`
	Interests string `form:"interests" json:"interests"`
	Skills    string `form:"skills" json:"skills"`
}

// ResumeField is the multipart field carrying the résumé PDF.
const ResumeField = "resume"

// Latest GET /api/
func (h *ProfileHandler) Latest(c *gin.Context) {
	sub, err := h.Service.Latest(c.Request.Context(), currentUserID(c))
	if errors.Is(err, application.ErrNoProfile) {
		response.OK(c, http.StatusOK, nil, "no profile submitted yet")
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toSubmissionDTO(sub), "")
}

// Submit POST /api/ (multipart/form-data)
func (h *ProfileHandler) Submit(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	var req submitRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	doc, err := readUpload(c, ResumeField)
	if err != nil {
		bindError(c, err)
		return
	}

	sub, err := h.Service.Submit(c.Request.Context(), currentUserID(c), application.SubmitInput{
		Name:      req.Name,
		CGPA:      req.CGPA,
		Interests: req.Interests,
		Skills:    req.Skills,
		Document:  doc,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toSubmissionDTO(sub), "analysis complete")
}

// readUpload returns nil when the field is absent.
func readUpload(c *gin.Context, field string) (*application.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &application.Upload{Filename: fh.Filename, Data: data}, nil
}
