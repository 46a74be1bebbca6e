package handler

import (
	"context"
	"net/http"
	"strconv"

	"plateforge/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// The seven option kinds share one endpoint shape, so the echo handlers are
// built generically from the typed service methods instead of hand-writing
// twenty-one near-identical functions.

func listOptions[T any](list func(context.Context) ([]T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		recs, err := list(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, recs)
	}
}

func createOption[T, R any](create func(context.Context, R) (*T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req R
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		rec, err := create(c.Request().Context(), req)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, rec)
	}
}

func updateOption[T, R any](update func(context.Context, uint, R) (*T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		var req R
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		rec, err := update(c.Request().Context(), uint(id), req)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rec)
	}
}

// RegisterPublic exposes the read-only catalog used by the configurator UI.
func (h *CatalogHandler) RegisterPublic(g *echo.Group) {
	g.GET("/options/plate-selections", listOptions(h.catalogService.ListPlateSelections))
	g.GET("/options/plate-types", listOptions(h.catalogService.ListPlateTypes))
	g.GET("/options/badges", listOptions(h.catalogService.ListBadges))
	g.GET("/options/badge-colors", listOptions(h.catalogService.ListBadgeColors))
	g.GET("/options/text-styles", listOptions(h.catalogService.ListTextStyles))
	g.GET("/options/border-colors", listOptions(h.catalogService.ListBorderColors))
	g.GET("/options/plate-surrounds", listOptions(h.catalogService.ListPlateSurrounds))
}

// RegisterAdmin exposes catalog management on an authenticated group.
func (h *CatalogHandler) RegisterAdmin(g *echo.Group) {
	g.GET("/options/plate-selections", listOptions(h.catalogService.ListPlateSelections))
	g.POST("/options/plate-selections", createOption(h.catalogService.CreatePlateSelection))
	g.PATCH("/options/plate-selections/:id", updateOption(h.catalogService.UpdatePlateSelection))

	g.GET("/options/plate-types", listOptions(h.catalogService.ListPlateTypes))
	g.POST("/options/plate-types", createOption(h.catalogService.CreatePlateType))
	g.PATCH("/options/plate-types/:id", updateOption(h.catalogService.UpdatePlateType))

	g.GET("/options/badges", listOptions(h.catalogService.ListBadges))
	g.POST("/options/badges", createOption(h.catalogService.CreateBadge))
	g.PATCH("/options/badges/:id", updateOption(h.catalogService.UpdateBadge))

	g.GET("/options/badge-colors", listOptions(h.catalogService.ListBadgeColors))
	g.POST("/options/badge-colors", createOption(h.catalogService.CreateBadgeColor))
	g.PATCH("/options/badge-colors/:id", updateOption(h.catalogService.UpdateBadgeColor))

	g.GET("/options/text-styles", listOptions(h.catalogService.ListTextStyles))
	g.POST("/options/text-styles", createOption(h.catalogService.CreateTextStyle))
	g.PATCH("/options/text-styles/:id", updateOption(h.catalogService.UpdateTextStyle))

	g.GET("/options/border-colors", listOptions(h.catalogService.ListBorderColors))
	g.POST("/options/border-colors", createOption(h.catalogService.CreateBorderColor))
	g.PATCH("/options/border-colors/:id", updateOption(h.catalogService.UpdateBorderColor))

	g.GET("/options/plate-surrounds", listOptions(h.catalogService.ListPlateSurrounds))
	g.POST("/options/plate-surrounds", createOption(h.catalogService.CreatePlateSurround))
	g.PATCH("/options/plate-surrounds/:id", updateOption(h.catalogService.UpdatePlateSurround))
}
