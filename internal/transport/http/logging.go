package http

import (
	"encoding/json"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/assettrack/asset-track-api/internal/domain"
)

// registerLogging emits one JSON line per request through the standard
// logger, which main may mirror to Logstash.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			username := "anonymous"
			if principal, ok := c.Get(contextPrincipalKey).(domain.Principal); ok {
				username = principal.Username
			}

			payload := struct {
				Time      string `json:"time"`
				User      string `json:"user"`
				Method    string `json:"method"`
				URI       string `json:"uri"`
				Status    int    `json:"status"`
				LatencyMS int64  `json:"latency_ms"`
				Error     string `json:"error,omitempty"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				User:      username,
				Method:    v.Method,
				URI:       v.URI,
				Status:    v.Status,
				LatencyMS: v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				payload.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))
}
