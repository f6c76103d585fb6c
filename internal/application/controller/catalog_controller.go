package controller

import (
	"net/http"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogController struct {
	api     *echo.Group
	useCase catalog.UseCase
}

func NewCatalogController(api *echo.Group, useCase catalog.UseCase) *CatalogController {
	return &CatalogController{api: api, useCase: useCase}
}

// InitCatalogRoutes initializes catalog routes
func (controller *CatalogController) InitCatalogRoutes() {
	controller.api.GET("/catalog/attributes", controller.FindAttributes)
	controller.api.GET("/catalog/stations", controller.FindStations)
	controller.api.GET("/catalog/aliases", controller.FindAliases)
	controller.api.DELETE("/catalog/cache", controller.EvictCache)
}

// FindAttributes godoc
// @Summary List the attribute catalog
// @Description Fetch the attributes measured at a frequency by a station type, with their aliases
// @Tags catalog
// @Produce json
// @Param frequency query string true "h, d or m"
// @Param stationType query string true "automatic or conventional"
// @Success 200 {array} entity.Attribute
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /catalog/attributes [get]
func (controller *CatalogController) FindAttributes(c echo.Context) error {
	frequency, err := entity.ParseFrequency(c.QueryParam("frequency"))
	if err != nil {
		return errorResponse(c, err)
	}
	stationType, err := entity.ParseStationType(c.QueryParam("stationType"))
	if err != nil {
		return errorResponse(c, err)
	}

	attributes, err := controller.useCase.FetchAttributes(c.Request().Context(), frequency, stationType)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, attributes)
}

// FindStations godoc
// @Summary List the station catalog
// @Description Fetch the stations of a type, optionally restricted to a region
// @Tags catalog
// @Produce json
// @Param stationType query string true "automatic or conventional"
// @Param region query string false "N, NO, S, SU or CO; every region when empty"
// @Success 200 {array} entity.Station
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /catalog/stations [get]
func (controller *CatalogController) FindStations(c echo.Context) error {
	stationType, err := entity.ParseStationType(c.QueryParam("stationType"))
	if err != nil {
		return errorResponse(c, err)
	}
	region, err := entity.ParseRegion(c.QueryParam("region"))
	if err != nil {
		return errorResponse(c, err)
	}

	stations, err := controller.useCase.FetchStations(c.Request().Context(), stationType, region)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stations)
}

// FindAliases godoc
// @Summary List attribute aliases
// @Description Filter the alias table by frequency, station type, alias or code. No filter returns the whole table.
// @Tags catalog
// @Produce json
// @Param frequency query string false "h, d or m"
// @Param stationType query string false "automatic or conventional"
// @Param alias query string false "Alias name"
// @Param code query string false "Attribute code"
// @Success 200 {array} entity.AttributeAlias
// @Failure 400 {object} model.ErrorResponse
// @Router /catalog/aliases [get]
func (controller *CatalogController) FindAliases(c echo.Context) error {
	var filter entity.AliasFilter
	var err error

	if v := c.QueryParam("frequency"); v != "" {
		if filter.Frequency, err = entity.ParseFrequency(v); err != nil {
			return errorResponse(c, err)
		}
	}
	if v := c.QueryParam("stationType"); v != "" {
		if filter.StationType, err = entity.ParseStationType(v); err != nil {
			return errorResponse(c, err)
		}
	}
	filter.Alias = c.QueryParam("alias")
	filter.Code = c.QueryParam("code")

	if filter.Frequency != "" && filter.StationType != "" && filter.Alias == "" && filter.Code == "" {
		return c.JSON(http.StatusOK, entity.Aliases(filter.Frequency, filter.StationType))
	}
	return c.JSON(http.StatusOK, entity.LookupAliases(filter))
}

// EvictCache godoc
// @Summary Evict cached catalogs
// @Description Drop every cached catalog so the next lookups hit INMET
// @Tags catalog
// @Produce json
// @Success 200 {object} model.EvictResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /catalog/cache [delete]
func (controller *CatalogController) EvictCache(c echo.Context) error {
	removed, err := controller.useCase.EvictCache(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.EvictResponse{Removed: removed})
}
