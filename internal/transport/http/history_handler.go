package http

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assettrack/asset-track-api/internal/report"
	"github.com/assettrack/asset-track-api/internal/service"
	"github.com/assettrack/asset-track-api/internal/util"
)

type HistoryHandler struct {
	history *service.HistoryService
}

func RegisterHistory(e *echo.Echo, auth *service.AuthService, history *service.HistoryService) {
	handler := &HistoryHandler{history: history}

	protected := e.Group("/api/history", RequireSession(auth))
	protected.GET("", handler.getHistory)
	protected.GET("/pdf", handler.getHistoryPDF)
}

func (h *HistoryHandler) getHistory(c echo.Context) error {
	entries, err := h.history.History(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("history: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not load history"))
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *HistoryHandler) getHistoryPDF(c echo.Context) error {
	entries, err := h.history.History(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("history pdf: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not load history"))
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, entries); err != nil {
		c.Logger().Errorf("history pdf render: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not render report"))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=history.pdf`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
