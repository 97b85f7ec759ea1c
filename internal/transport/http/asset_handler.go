package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/service"
	"github.com/assettrack/asset-track-api/internal/util"
)

type AssetHandler struct {
	assets *service.AssetService
}

func RegisterAssets(e *echo.Echo, auth *service.AuthService, assets *service.AssetService) {
	handler := &AssetHandler{assets: assets}

	protected := e.Group("/api/assets", RequireSession(auth))
	protected.POST("/:category", handler.createAsset)
	protected.GET("/:category", handler.listAssets)
}

func (h *AssetHandler) createAsset(c echo.Context) error {
	principal, ok := CurrentPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}

	var input domain.NewAssetInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body"))
	}

	record, err := h.assets.Create(c.Request().Context(), c.Param("category"), input, principal.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, util.Envelope{"success": true, "data": record})
	case errors.Is(err, service.ErrInvalidCategory):
		return c.JSON(http.StatusBadRequest, util.Error("Invalid category"))
	case errors.Is(err, service.ErrNameRequired):
		return c.JSON(http.StatusBadRequest, util.Error("Name required"))
	case errors.Is(err, service.ErrGeneration):
		c.Logger().Errorf("create asset: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not generate asset codes"))
	default:
		c.Logger().Errorf("create asset: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not create asset"))
	}
}

func (h *AssetHandler) listAssets(c echo.Context) error {
	records, err := h.assets.List(c.Request().Context(), c.Param("category"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, records)
	case errors.Is(err, service.ErrInvalidCategory):
		return c.JSON(http.StatusBadRequest, util.Error("Invalid category"))
	default:
		c.Logger().Errorf("list assets: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Could not list assets"))
	}
}
