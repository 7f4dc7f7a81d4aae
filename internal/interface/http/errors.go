package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/response"
	"github.com/oksasatya/edupath/pkg/validation"
)

// writeError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported without detail.
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	var ve *application.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusUnprocessableEntity, "validation failed", response.ErrorBody{Code: "validation", Details: ve.Fields})
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Fail(c, http.StatusConflict, "email already registered", response.ErrorBody{Code: "duplicate_email"})
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid email or password", response.ErrorBody{Code: "invalid_credentials"})
	case errors.Is(err, application.ErrSessionNotFound):
		response.Fail(c, http.StatusUnauthorized, "session expired", response.ErrorBody{Code: "unauthorized"})
	case errors.Is(err, application.ErrNoProfile):
		response.Fail(c, http.StatusNotFound, "submit a profile first", response.ErrorBody{Code: "no_profile"})
	case errors.Is(err, application.ErrNoResume):
		response.Fail(c, http.StatusNotFound, "no resume available to download", response.ErrorBody{Code: "no_resume"})
	case errors.Is(err, application.ErrNoQuizInProgress):
		response.Fail(c, http.StatusNotFound, "no skills found, start the quiz first", response.ErrorBody{Code: "no_quiz"})
	default:
		if log != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		response.Fail(c, http.StatusInternalServerError, "internal error", response.ErrorBody{Code: "internal"})
	}
}

// bindError reports a binding failure: 400 for undecodable payloads, 422 for rule violations.
func bindError(c *gin.Context, err error) {
	switch {
	case isTooLarge(err):
		response.Fail(c, http.StatusRequestEntityTooLarge, "upload too large", response.ErrorBody{Code: "too_large"})
	case validation.IsMalformed(err):
		response.Fail(c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "bad_request", Details: validation.ToDetails(err)})
	default:
		response.Fail(c, http.StatusUnprocessableEntity, "validation failed", response.ErrorBody{Code: "validation", Details: validation.ToDetails(err)})
	}
}

// multipart parsing does not always wrap the MaxBytesReader error
func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large")
}
