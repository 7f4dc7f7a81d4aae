package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/response"
)

// DashboardReader serves the read-only views.
type DashboardReader interface {
	Dashboard(ctx context.Context, userID int64) (*application.Dashboard, error)
	History(ctx context.Context, userID int64) ([]application.HistoryEntry, error)
	SearchHistory(ctx context.Context, userID int64, query string) ([]application.HistoryEntry, error)
}

type DashboardHandler struct {
	Service DashboardReader
	Logger  *logrus.Logger
}

func NewDashboardHandler(svc DashboardReader, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Service: svc, Logger: logger}
}

// Dashboard GET /api/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	d, err := h.Service.Dashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toDashboardDTO(d), "")
}

// History GET /api/history
func (h *DashboardHandler) History(c *gin.Context) {
	entries, err := h.Service.History(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toHistoryDTOs(entries), "")
}

// Search GET /api/history/search?q=
func (h *DashboardHandler) Search(c *gin.Context) {
	entries, err := h.Service.SearchHistory(c.Request.Context(), currentUserID(c), c.Query("q"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toHistoryDTOs(entries), "")
}
