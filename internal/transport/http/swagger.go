package http

import (
	"net/http"
	"os"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/assettrack/asset-track-api/internal/util"
)

const swaggerSpecPath = "docs/swagger.yaml"

var (
	swaggerOnce sync.Once
	swaggerJSON []byte
	swaggerErr  error
)

// RegisterSwagger serves the API description and its UI under /swagger.
// The YAML source is converted on first request and held for the process
// lifetime.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", serveSwaggerSpec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func serveSwaggerSpec(c echo.Context) error {
	swaggerOnce.Do(func() {
		data, err := os.ReadFile(swaggerSpecPath)
		if err != nil {
			swaggerErr = err
			return
		}
		swaggerJSON, swaggerErr = yaml.YAMLToJSON(data)
	})
	if swaggerErr != nil {
		c.Logger().Errorf("swagger spec: %v", swaggerErr)
		return c.JSON(http.StatusInternalServerError, util.Error("API description unavailable"))
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, swaggerJSON)
}
