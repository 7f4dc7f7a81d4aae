package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/response"
)

// SkillQuiz runs the self-assessment quiz.
type SkillQuiz interface {
	Start(ctx context.Context, userID int64, skillsCSV string) ([]application.Question, error)
	Current(ctx context.Context, userID int64) ([]application.Question, error)
	Result(ctx context.Context, userID int64, ratings map[string]int) (*application.QuizResult, error)
}

type QuizHandler struct {
	Service SkillQuiz
	Logger  *logrus.Logger
}

func NewQuizHandler(svc SkillQuiz, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{Service: svc, Logger: logger}
}

type startQuizRequest struct {
	UserSkills string `json:"user_skills" form:"user_skills"`
}

type ratingsRequest struct {
	Ratings map[string]int `json:"ratings"`
}

// Show GET /api/skill-quiz
func (h *QuizHandler) Show(c *gin.Context) {
	qs, err := h.Service.Current(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"questions": qs}, "")
}

// Start POST /api/skill-quiz
func (h *QuizHandler) Start(c *gin.Context) {
	var req startQuizRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	qs, err := h.Service.Start(c.Request.Context(), currentUserID(c), req.UserSkills)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"questions": qs}, "")
}

// Result POST /api/skill-quiz-result
// Accepts {"ratings": {"Python": 5}} or form fields named after each skill.
func (h *QuizHandler) Result(c *gin.Context) {
	ratings, err := readRatings(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	res, err := h.Service.Result(c.Request.Context(), currentUserID(c), ratings)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, res, "")
}

func readRatings(c *gin.Context) (map[string]int, error) {
	if c.ContentType() == binding.MIMEJSON {
		var req ratingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, &application.ValidationError{Fields: map[string]string{"ratings": "must map skills to numbers"}}
		}
		if req.Ratings == nil {
			req.Ratings = map[string]int{}
		}
		return req.Ratings, nil
	}

	if err := c.Request.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, &application.ValidationError{Fields: map[string]string{"payload": "invalid form"}}
	}
	out := map[string]int{}
	bad := map[string]string{}
	for skill, vals := range c.Request.PostForm {
		if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil {
			bad[skill] = "must be a number"
			continue
		}
		out[skill] = n
	}
	if len(bad) > 0 {
		return nil, &application.ValidationError{Fields: bad}
	}
	return out, nil
}
