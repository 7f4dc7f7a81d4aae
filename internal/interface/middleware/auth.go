package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/helpers"
	"github.com/oksasatya/edupath/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// SessionVerifier confirms that a token's session is still the active one.
type SessionVerifier interface {
	VerifySession(ctx context.Context, userID int64, sid string) (*application.Session, error)
}

// Auth validates the access cookie and requires its session to be active.
// It sets userID (int64) and userEmail in the Gin context on success.
func Auth(sessions SessionVerifier, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.AccessCookie)
		if err != nil || token == "" {
			response.Fail(c, http.StatusUnauthorized, "login required", response.ErrorBody{Code: "unauthorized"})
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid access token", response.ErrorBody{Code: "unauthorized"})
			return
		}
		uid, err := claims.UID()
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid access token", response.ErrorBody{Code: "unauthorized"})
			return
		}
		sess, err := sessions.VerifySession(c.Request.Context(), uid, claims.SessionID)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "session expired", response.ErrorBody{Code: "unauthorized"})
			return
		}

		c.Set(CtxUserIDKey, uid)
		c.Set(CtxUserEmailKey, sess.Email)
		c.Next()
	}
}
