package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/pkg/helpers"
	"github.com/oksasatya/edupath/pkg/response"
)

// Authenticator is the account API used by AuthHandler.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*application.LoginResult, error)
	Logout(ctx context.Context, userID int64) error
}

type AuthHandler struct {
	Service Authenticator
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc Authenticator, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Cookies: cookies, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.Service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toUserDTO(u), "registered, please log in")
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetAccess(c, res.AccessToken, res.ExpiresAt)
	response.OK(c, http.StatusOK, toUserDTO(res.User), "logged in")
}

// Logout GET /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, nil, "logged out")
}
